package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/brewdash/brewdash/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List registered customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		customers, err := postgres.NewCustomerRepository(pool).GetAll(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, customer := range customers {
			fmt.Fprintf(tw, "%s\t%s\t%s\tjoined %s\n",
				customer.ID, customer.Name, customer.Email, customer.JoinedAt.Format("2006-01-02"))
		}
		tw.Flush()
		fmt.Fprintf(out, "%d customers\n", len(customers))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(customersCmd)
}
