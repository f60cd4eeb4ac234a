package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/FranksOps/prospect/internal/lead"
)

// ensure JSON implements Exporter
var _ Exporter = JSON{}

// JSON writes the lead table as an indented array of record objects, keys in
// column order.
type JSON struct{}

// Ext implements Exporter.
func (JSON) Ext() string { return "json" }

// orderedRecord marshals one lead with its keys in canonical column order.
// encoding/json sorts map keys, so the object is assembled by hand.
type orderedRecord struct {
	lead *lead.Lead
}

func (r orderedRecord) MarshalJSON() ([]byte, error) {
	record := r.lead.Record()

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range lead.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(record[col])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Export implements Exporter.
func (JSON) Export(ctx context.Context, path string, leads []*lead.Lead) error {
	records := make([]orderedRecord, 0, len(leads))
	for _, l := range leads {
		records = append(records, orderedRecord{lead: l})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode leads: %w", err)
	}
	return f.Close()
}
