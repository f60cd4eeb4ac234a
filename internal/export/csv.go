package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/FranksOps/prospect/internal/lead"
)

// ensure CSV implements Exporter
var _ Exporter = CSV{}

// CSV writes the lead table as comma-separated values with a header row.
type CSV struct{}

// Ext implements Exporter.
func (CSV) Ext() string { return "csv" }

// Export implements Exporter.
func (CSV) Export(ctx context.Context, path string, leads []*lead.Lead) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(lead.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, l := range leads {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.Write(l.Row()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return f.Close()
}
