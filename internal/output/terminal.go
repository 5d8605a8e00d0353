// Package output renders reconciled subnet records: a colored table on
// the terminal and a JSON export document for files.
package output

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/graytensor/subnetscan/internal/subnet"
	"github.com/graytensor/subnetscan/internal/symbol"
)

// Colors for headers and summary lines
var (
	cyan = color.New(color.FgCyan).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

// DisableColors turns off all ANSI color output.
func DisableColors() {
	color.NoColor = true
}

// TableOptions controls the terminal rendering.
type TableOptions struct {
	// Debug adds the Error column and includes rows that carry no data.
	Debug bool
}

// RenderTable prints the subnet records as a formatted table followed
// by an active/total summary. Rows where every field is still at its
// default are hidden unless Debug is set.
func RenderTable(records []*subnet.Record, opts TableOptions) {
	fmt.Println()
	fmt.Println(bold("Bittensor Subnet Information"))

	headerFmt := color.New(color.FgMagenta, color.Bold).SprintfFunc()

	var tbl table.Table
	if opts.Debug {
		tbl = table.New("Subnet ID", "Name", "Symbol", "Validators", "Miners", "Emission (TAO/day)", "Price", "Error")
	} else {
		tbl = table.New("Subnet ID", "Name", "Symbol", "Validators", "Miners", "Emission (TAO/day)", "Price")
	}
	tbl.WithHeaderFormatter(headerFmt)

	active := 0
	for _, rec := range records {
		if !rec.HasData() && !opts.Debug {
			continue
		}
		active++

		row := []interface{}{
			rec.NetUID,
			rec.Name,
			symbol.Sanitize(rec.Symbol),
			humanize.Comma(int64(rec.Validators)),
			humanize.Comma(int64(rec.Miners)),
			fmt.Sprintf("%.6f", rec.EmissionPerDay),
			fmt.Sprintf("%.6f", rec.Price),
		}
		if opts.Debug {
			row = append(row, rec.Error)
		}
		tbl.AddRow(row...)
	}

	tbl.Print()

	fmt.Printf("\nActive Subnets: %s / Total Subnets: %s\n",
		cyan(humanize.Comma(int64(active))),
		cyan(humanize.Comma(int64(len(records)))))
	fmt.Printf("\nCreated by %s - taotrack.com\n", bold("Graytensor"))
}
