package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brewdash/brewdash/internal/dashboard"
	"github.com/brewdash/brewdash/internal/models"
	"github.com/brewdash/brewdash/internal/repositories/postgres"
	"github.com/brewdash/brewdash/internal/schedule"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "brewdash",
	Short: "Pickup scheduling and sales dashboards for a coffee-shop ordering service",
	Long: `brewdash is the backend core of a coffee-shop ordering product. It computes
offerable pickup times against the shop's business hours and aggregates
completed orders into admin dashboard metrics, a trailing weekly sales
rollup and top-item rankings.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*models.Config, error) {
	return models.LoadConfig(cfgFile)
}

func businessHours(cfg *models.Config) (schedule.BusinessHours, error) {
	return schedule.ParseBusinessHours(cfg.BusinessHours.Open, cfg.BusinessHours.Close)
}

func openPool(ctx context.Context, cfg *models.Config) (*pgxpool.Pool, error) {
	return postgres.NewPool(ctx, cfg.Database.ConnString())
}

func newAggregator(pool *pgxpool.Pool) *dashboard.Aggregator {
	return dashboard.NewAggregator(
		postgres.NewOrderRepository(pool),
		postgres.NewOrderItemRepository(pool),
		postgres.NewMenuItemRepository(pool),
	)
}

// parseTimeFlag interprets an optional RFC3339 override of "now".
func parseTimeFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected RFC3339: %w", value, err)
	}
	return t, nil
}
