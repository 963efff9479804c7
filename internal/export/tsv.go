package export

import (
	"context"
	"encoding/csv"
	"io"

	"biomine/internal/domain"
	"biomine/internal/results"
)

// TSVExporter exports the table as tab-separated text: visible columns
// only, in display order.
type TSVExporter struct{}

// NewTSVExporter creates a TSV exporter.
func NewTSVExporter() *TSVExporter {
	return &TSVExporter{}
}

func (e *TSVExporter) Format() string        { return FormatTSV }
func (e *TSVExporter) ContentType() string   { return "text/tab-separated-values" }
func (e *TSVExporter) FileExtension() string { return ".tsv" }

// Export writes a header of visible column names followed by the data rows.
// All rows are collected before anything is written, so an empty table
// yields ErrNothingToExport and no artifact.
func (e *TSVExporter) Export(ctx context.Context, w io.Writer, table *results.PagedResults) (int, error) {
	var visible []*results.Column
	for _, c := range table.Columns() {
		if c.Visible {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		return 0, ErrNothingToExport
	}

	var records [][]string
	err := forEachRow(ctx, table, func(row domain.Row) error {
		record := make([]string, len(visible))
		for i, c := range visible {
			if c.Index < len(row) {
				record[i] = row[c.Index].String()
			}
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, ErrNothingToExport
	}

	header := make([]string, len(visible))
	for i, c := range visible {
		header[i] = c.Name
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(header); err != nil {
		return 0, err
	}
	if err := cw.WriteAll(records); err != nil {
		return 0, err
	}
	return len(records), nil
}
