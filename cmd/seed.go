package cmd

import (
	"time"

	"github.com/brewdash/brewdash/internal/events"
	"github.com/brewdash/brewdash/internal/repositories/postgres"
	"github.com/brewdash/brewdash/internal/seeder"
	"github.com/spf13/cobra"
)

var seedPrintEvents bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and load fake customers, menu and order history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		hours, err := businessHours(cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.CreateSchema(ctx, pool); err != nil {
			return err
		}

		var publisher events.Publisher
		if cfg.KafkaEnabled {
			publisher, err = events.NewKafkaPublisher(cfg.KafkaBrokerList)
			if err != nil {
				return err
			}
			defer publisher.Close()
		} else if seedPrintEvents {
			publisher = events.NewConsolePublisher(cmd.OutOrStdout())
		}

		s := seeder.New(
			cfg,
			hours,
			postgres.NewCustomerRepository(pool),
			postgres.NewMenuItemRepository(pool),
			postgres.NewOrderRepository(pool),
			postgres.NewOrderItemRepository(pool),
			publisher,
		)
		return s.Run(ctx, time.Now())
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedPrintEvents, "print-events", false, "print seeded order events to stdout when Kafka is disabled")
	rootCmd.AddCommand(seedCmd)
}
