package cmd

import (
	"fmt"
	"time"

	"github.com/brewdash/brewdash/internal/cloudwriter"
	"github.com/brewdash/brewdash/internal/export"
	"github.com/brewdash/brewdash/internal/models"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportAt     string
)

type reportExporter interface {
	Export(data models.DashboardData, now time.Time) ([]string, error)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the weekly sales and top-item reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		now, err := parseTimeFlag(exportAt)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		data, err := newAggregator(pool).DashboardData(ctx, now, cfg.TopItemsLimit)
		if err != nil {
			return err
		}

		var exporter reportExporter
		switch exportFormat {
		case "csv":
			exporter = export.NewCSVExporter(cfg.OutputFolder)
		case "parquet":
			var cloud cloudwriter.Factory
			if cfg.S3Bucket != "" {
				cloud, err = cloudwriter.NewS3Factory(ctx, cfg.S3Region, cfg.S3Bucket)
				if err != nil {
					return err
				}
			}
			exporter = export.NewParquetExporter(cfg.OutputFolder, cloud)
		default:
			return fmt.Errorf("unknown export format %q, expected csv or parquet", exportFormat)
		}

		locations, err := exporter.Export(data, now)
		if err != nil {
			return err
		}
		for _, location := range locations {
			fmt.Fprintln(cmd.OutOrStdout(), location)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "report format: csv or parquet")
	exportCmd.Flags().StringVar(&exportAt, "at", "", "compute reports as of this RFC3339 time (default now)")
	rootCmd.AddCommand(exportCmd)
}
