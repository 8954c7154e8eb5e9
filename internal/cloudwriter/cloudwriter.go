package cloudwriter

import "io"

// CloudWriter buffers report bytes and ships them to the destination on Close.
type CloudWriter interface {
	io.Writer
	Close() error
}

// Factory creates writers for named objects in a single destination bucket.
type Factory interface {
	NewWriter(key string) (CloudWriter, error)
}
