package export

import (
	"context"
	"io"

	"biomine/internal/domain"
	"biomine/internal/results"
)

// DefaultInteractionType is used when no type column is configured or the
// type element is empty.
const DefaultInteractionType = "pp"

// SIFExporter exports interaction rows as a cytoscape SIF network. Source
// and target columns are addressed by original schema index, so display
// reordering and hidden columns do not affect the output.
type SIFExporter struct {
	opts Options
}

// NewSIFExporter creates a SIF exporter for the given column selection.
func NewSIFExporter(opts Options) *SIFExporter {
	return &SIFExporter{opts: opts}
}

func (e *SIFExporter) Format() string        { return FormatSIF }
func (e *SIFExporter) ContentType() string   { return "text/plain" }
func (e *SIFExporter) FileExtension() string { return ".sif" }

// Export builds the deduplicated network from every row of the table, then
// writes it. Nothing is written when no interactions are found —
// ErrNothingToExport is returned instead of a zero-byte file.
func (e *SIFExporter) Export(ctx context.Context, w io.Writer, table *results.PagedResults) (int, error) {
	cols := table.ColumnCount()
	if e.opts.SourceColumn < 0 || e.opts.SourceColumn >= cols ||
		e.opts.TargetColumn < 0 || e.opts.TargetColumn >= cols {
		return 0, domain.ErrValidation("interaction columns out of range for %d-column table", cols)
	}

	network := NewNetwork()
	err := forEachRow(ctx, table, func(row domain.Row) error {
		source := row[e.opts.SourceColumn].String()
		target := row[e.opts.TargetColumn].String()
		if source == "" || target == "" {
			return nil // incomplete interaction, skip
		}

		interactionType := DefaultInteractionType
		if e.opts.TypeColumn >= 0 && e.opts.TypeColumn < cols {
			if t := row[e.opts.TypeColumn].String(); t != "" {
				interactionType = t
			}
		}

		network.Add(source, interactionType, target)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if network.Size() == 0 {
		return 0, ErrNothingToExport
	}
	if err := network.WriteSIF(w); err != nil {
		return 0, err
	}
	return network.Size(), nil
}
