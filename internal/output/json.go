package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/graytensor/subnetscan/internal/subnet"
)

// Export is the machine-readable output document.
type Export struct {
	Timestamp    time.Time        `json:"timestamp"`
	TotalSubnets int              `json:"total_subnets"`
	Subnets      []*subnet.Record `json:"subnets"`
	PoweredBy    string           `json:"powered_by"`
}

const attribution = "Graytensor - taotrack.com"

// NewExport wraps the record sequence in the export envelope.
func NewExport(records []*subnet.Record) *Export {
	return &Export{
		Timestamp:    time.Now(),
		TotalSubnets: len(records),
		Subnets:      records,
		PoweredBy:    attribution,
	}
}

// Render writes the export document, indented, to stdout.
func Render(records []*subnet.Record) error {
	return encodeExport(os.Stdout, records)
}

// WriteFile writes the export document, indented, to the given path.
func WriteFile(path string, records []*subnet.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return encodeExport(f, records)
}

func encodeExport(w io.Writer, records []*subnet.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(NewExport(records)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
