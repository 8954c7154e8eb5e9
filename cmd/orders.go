package cmd

import (
	"fmt"
	"time"

	"github.com/brewdash/brewdash/internal/events"
	"github.com/brewdash/brewdash/internal/models"
	"github.com/brewdash/brewdash/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders",
}

var ordersSetStatusCmd = &cobra.Command{
	Use:   "set-status <order-id> <status>",
	Short: "Move an order to a new status and publish the change",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		status := models.OrderStatus(args[1])
		if !status.Valid() {
			return fmt.Errorf("unknown status %q", args[1])
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		repo := postgres.NewOrderRepository(pool)
		order, err := repo.GetByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("loading order %s: %w", args[0], err)
		}
		if err := repo.UpdateStatus(ctx, order.ID, status); err != nil {
			return fmt.Errorf("updating order %s: %w", order.ID, err)
		}
		order.Status = status

		var publisher events.Publisher
		if cfg.KafkaEnabled {
			publisher, err = events.NewKafkaPublisher(cfg.KafkaBrokerList)
			if err != nil {
				return err
			}
			defer publisher.Close()
		} else {
			publisher = events.NewConsolePublisher(cmd.OutOrStdout())
		}

		payload, err := events.NewOrderEvent(order, time.Now()).Marshal()
		if err != nil {
			return err
		}
		if err := publisher.Publish(cfg.EventTopic, payload); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "order %s is now %s\n", order.ID, order.Status)
		return nil
	},
}

func init() {
	ordersCmd.AddCommand(ordersSetStatusCmd)
	rootCmd.AddCommand(ordersCmd)
}
