package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"cuisine-scene/models"
)

// CSVWriter writes the aggregated cuisine table to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"locality", "cuisine", "count", "percentage"}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one row per aggregated category followed by a "total" row.
// Unknown categories are written with empty count and percentage.
func (c *CSVWriter) Write(report *models.Report) error {
	if report == nil || report.Aggregate == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	loc := report.Locality.String()
	for _, row := range report.Aggregate.Rows {
		rec := []string{
			loc,
			row.Category,
			strconv.Itoa(row.Count),
			strconv.FormatFloat(row.Percentage, 'f', 2, 64),
		}
		if err := c.writer.Write(rec); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	for _, category := range report.Aggregate.Excluded {
		if err := c.writer.Write([]string{loc, category, "", ""}); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	if err := c.writer.Write([]string{loc, "total", strconv.Itoa(report.Aggregate.Total), "100.00"}); err != nil {
		return fmt.Errorf("csv: write total: %w", err)
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
