// Package export writes a run's lead table to downloadable artifacts.
// Every format serializes the identical column set and row order.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/FranksOps/prospect/internal/lead"
)

// Exporter writes the full lead table to a file in one format.
type Exporter interface {
	// Export writes the lead table to path. The file is created or truncated.
	Export(ctx context.Context, path string, leads []*lead.Lead) error
	// Ext returns the artifact file extension, without the dot.
	Ext() string
}

// Filename returns the artifact name for a run finished at t:
// b2b_leads_<YYYYMMDD_HHMMSS>.<ext>.
func Filename(e Exporter, t time.Time) string {
	return fmt.Sprintf("b2b_leads_%s.%s", t.Format("20060102_150405"), e.Ext())
}

// ForFormat maps a configured format name to its Exporter.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "excel", "xlsx":
		return XLSX{}, nil
	case "csv":
		return CSV{}, nil
	case "json":
		return JSON{}, nil
	case "sqlite":
		return SQLite{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
