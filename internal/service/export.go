package service

import (
	"bytes"
	"context"
	"log/slog"

	"biomine/internal/export"
)

// ExportResult carries a finished export ready to be written to a response.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
	Count       int
}

// ExportService renders a registered result table through one of the
// exporters. Output is buffered fully before being handed back, so a failing
// or empty export never produces a partial artifact.
type ExportService struct {
	tables *TableRegistry
	logger *slog.Logger
}

func NewExportService(tables *TableRegistry, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{tables: tables, logger: logger}
}

// Export runs the exporter for format against the table with the given id.
// It returns ErrNothingToExport (wrapped) when the table yields no output.
func (s *ExportService) Export(ctx context.Context, tableID, format string, opts export.Options) (*ExportResult, error) {
	paged, err := s.tables.Get(tableID)
	if err != nil {
		return nil, err
	}

	exp, err := export.New(format, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	count, err := exp.Export(ctx, &buf, paged)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export complete", "table_id", tableID, "format", exp.Format(), "count", count)
	return &ExportResult{
		Data:        buf.Bytes(),
		ContentType: exp.ContentType(),
		Filename:    "results" + exp.FileExtension(),
		Count:       count,
	}, nil
}
