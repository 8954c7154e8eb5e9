package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brewdash/brewdash/internal/cloudwriter"
	"github.com/brewdash/brewdash/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go-source/writerfile"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

type weeklySalesRow struct {
	Date  string  `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8"`
	Day   string  `parquet:"name=day, type=BYTE_ARRAY, convertedtype=UTF8"`
	Sales float64 `parquet:"name=sales, type=DOUBLE"`
}

type topItemRow struct {
	Rank       int32  `parquet:"name=rank, type=INT32"`
	MenuItemID string `parquet:"name=menu_item_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name       string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Sold       int32  `parquet:"name=sold, type=INT32"`
}

// ParquetExporter writes the dashboard report files as parquet, locally or to
// S3 when a cloud factory is supplied.
type ParquetExporter struct {
	folder string
	cloud  cloudwriter.Factory
}

func NewParquetExporter(folder string, cloud cloudwriter.Factory) *ParquetExporter {
	return &ParquetExporter{folder: folder, cloud: cloud}
}

func (e *ParquetExporter) Export(data models.DashboardData, now time.Time) ([]string, error) {
	date := now.Format("2006-01-02")

	weeklyName := fmt.Sprintf("weekly_sales_%s.parquet", date)
	weeklyRows := make([]interface{}, 0, len(data.WeeklySales))
	for _, entry := range data.WeeklySales {
		weeklyRows = append(weeklyRows, weeklySalesRow{
			Date:  entry.Date,
			Day:   entry.Day,
			Sales: entry.Sales,
		})
	}
	weeklyLocation, err := e.writeFile(weeklyName, new(weeklySalesRow), weeklyRows)
	if err != nil {
		return nil, err
	}

	topName := fmt.Sprintf("top_items_%s.parquet", date)
	topRows := make([]interface{}, 0, len(data.TopItems))
	for _, item := range data.TopItems {
		topRows = append(topRows, topItemRow{
			Rank:       int32(item.Rank),
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Sold:       int32(item.Sold),
		})
	}
	topLocation, err := e.writeFile(topName, new(topItemRow), topRows)
	if err != nil {
		return nil, err
	}

	return []string{weeklyLocation, topLocation}, nil
}

func (e *ParquetExporter) writeFile(name string, schema interface{}, rows []interface{}) (string, error) {
	fw, location, err := e.newParquetFile(name)
	if err != nil {
		return "", err
	}

	pw, err := writer.NewParquetWriter(fw, schema, 1)
	if err != nil {
		fw.Close()
		return "", fmt.Errorf("creating parquet writer for %s: %w", name, err)
	}
	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			fw.Close()
			return "", fmt.Errorf("writing parquet row to %s: %w", name, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return "", fmt.Errorf("finalizing %s: %w", name, err)
	}
	if err := fw.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	return location, nil
}

func (e *ParquetExporter) newParquetFile(name string) (source.ParquetFile, string, error) {
	if e.cloud != nil {
		cw, err := e.cloud.NewWriter(name)
		if err != nil {
			return nil, "", fmt.Errorf("creating cloud writer for %s: %w", name, err)
		}
		return writerfile.NewWriterFile(cw), name, nil
	}

	if err := os.MkdirAll(e.folder, 0o755); err != nil {
		return nil, "", fmt.Errorf("creating output folder: %w", err)
	}
	path := filepath.Join(e.folder, name)
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, "", fmt.Errorf("creating %s: %w", path, err)
	}
	return fw, path, nil
}
