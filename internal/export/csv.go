package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brewdash/brewdash/internal/models"
)

// CSVExporter writes the dashboard report files into a local folder.
type CSVExporter struct {
	folder string
}

func NewCSVExporter(folder string) *CSVExporter {
	return &CSVExporter{folder: folder}
}

func (e *CSVExporter) Export(data models.DashboardData, now time.Time) ([]string, error) {
	if err := os.MkdirAll(e.folder, 0o755); err != nil {
		return nil, fmt.Errorf("creating output folder: %w", err)
	}

	date := now.Format("2006-01-02")
	weeklyPath := filepath.Join(e.folder, fmt.Sprintf("weekly_sales_%s.csv", date))
	if err := writeCSVFile(weeklyPath, weeklySalesRows(data.WeeklySales)); err != nil {
		return nil, err
	}
	topPath := filepath.Join(e.folder, fmt.Sprintf("top_items_%s.csv", date))
	if err := writeCSVFile(topPath, topItemRows(data.TopItems)); err != nil {
		return nil, err
	}

	return []string{weeklyPath, topPath}, nil
}

func writeCSVFile(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func weeklySalesRows(week []models.WeeklySalesData) [][]string {
	rows := [][]string{{"date", "day", "sales"}}
	for _, entry := range week {
		rows = append(rows, []string{
			entry.Date,
			entry.Day,
			strconv.FormatFloat(entry.Sales, 'f', 2, 64),
		})
	}
	return rows
}

func topItemRows(items []models.TopItem) [][]string {
	rows := [][]string{{"rank", "menu_item_id", "name", "sold"}}
	for _, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(item.Rank),
			item.MenuItemID,
			item.Name,
			strconv.Itoa(item.Sold),
		})
	}
	return rows
}
