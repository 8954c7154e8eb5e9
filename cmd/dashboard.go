package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/spf13/cobra"
)

var (
	dashboardAt  string
	dashboardTop int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's metrics, the weekly sales rollup and top items",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		now, err := parseTimeFlag(dashboardAt)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		limit := dashboardTop
		if limit <= 0 {
			limit = cfg.TopItemsLimit
		}

		data, err := newAggregator(pool).DashboardData(ctx, now, limit)
		if err != nil {
			return err
		}

		printDashboard(cmd.OutOrStdout(), data)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardAt, "at", "", "compute the dashboard as of this RFC3339 time (default now)")
	dashboardCmd.Flags().IntVar(&dashboardTop, "top", 0, "number of top items to show (default from config)")
	rootCmd.AddCommand(dashboardCmd)
}

func printDashboard(w io.Writer, data models.DashboardData) {
	fmt.Fprintf(w, "Today's sales:     %.2f\n", data.Metrics.TodaysSales)
	fmt.Fprintf(w, "Orders today:      %d\n", data.Metrics.OrdersToday)
	fmt.Fprintf(w, "Average per order: %.2f\n", data.Metrics.AveragePerOrder)

	fmt.Fprintln(w, "\nWeekly sales")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, day := range data.WeeklySales {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", day.Date, day.Day, day.Sales)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nTop items")
	if len(data.TopItems) == 0 {
		fmt.Fprintln(w, "no completed orders today")
		return
	}
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, item := range data.TopItems {
		fmt.Fprintf(tw, "%d\t%s\t%d sold\n", item.Rank, item.Name, item.Sold)
	}
	tw.Flush()
}
