package main

import "github.com/brewdash/brewdash/cmd"

func main() {
	cmd.Execute()
}
