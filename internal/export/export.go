// Package export writes whole result tables to downstream file formats.
// Exporters drive the table through its windowed accessor page by page and
// never track pagination state of their own.
package export

import (
	"context"
	"errors"
	"io"

	"biomine/internal/domain"
	"biomine/internal/results"
)

// ErrNothingToExport reports that the table held no exportable entities.
// This is an informational, user-visible outcome — callers must surface a
// message instead of producing an empty artifact.
var ErrNothingToExport = errors.New("nothing to export")

// Options selects the columns an exporter reads, by original schema index.
type Options struct {
	// SourceColumn and TargetColumn are the interaction endpoints for
	// network formats.
	SourceColumn int
	TargetColumn int
	// TypeColumn is the interaction type column; negative means the
	// default "pp" (protein-protein) type.
	TypeColumn int
}

// Exporter writes a full table to w. The returned count is the number of
// exported entities; zero entities yields ErrNothingToExport and no output.
type Exporter interface {
	Format() string
	ContentType() string
	FileExtension() string
	Export(ctx context.Context, w io.Writer, table *results.PagedResults) (int, error)
}

// Export format names.
const (
	FormatSIF = "sif"
	FormatTSV = "tsv"
)

// New returns the exporter for the given format name.
func New(format string, opts Options) (Exporter, error) {
	switch format {
	case FormatSIF:
		return NewSIFExporter(opts), nil
	case FormatTSV:
		return NewTSVExporter(), nil
	default:
		return nil, domain.ErrValidation("unknown export format %q", format)
	}
}

// forEachRow walks every row of the table from the first page to the end,
// restoring the table's window afterwards. Traversal stops at the proven
// end of the results: either the last page under an exact count, or the
// first window past the final row.
func forEachRow(ctx context.Context, table *results.PagedResults, fn func(domain.Row) error) error {
	savedStart := table.StartRow()
	defer func() {
		table.FirstPage()
		for table.StartRow() < savedStart {
			table.NextPage()
		}
	}()

	table.FirstPage()
	for {
		rows, err := table.Rows(ctx)
		if errors.Is(err, domain.ErrPastEnd) {
			return nil
		}
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := fn(row); err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			return nil
		}

		last, err := table.IsLastPage(ctx)
		if err != nil {
			return err
		}
		if last {
			return nil
		}
		table.NextPage()
	}
}
