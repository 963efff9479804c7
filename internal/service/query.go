package service

import (
	"context"
	"log/slog"
	"time"

	"biomine/internal/domain"
	"biomine/internal/engine"
	"biomine/internal/results"
)

// QueryService executes SQL through the engine, registers the resulting
// paged table, and records query history.
type QueryService struct {
	engine  *engine.Engine
	history domain.QueryHistoryRepository
	tables  *TableRegistry
	logger  *slog.Logger
}

func NewQueryService(eng *engine.Engine, history domain.QueryHistoryRepository, tables *TableRegistry, logger *slog.Logger) *QueryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryService{engine: eng, history: history, tables: tables, logger: logger}
}

// Execute runs a query and returns the registered table id and its paged
// view positioned on the first page.
func (s *QueryService) Execute(ctx context.Context, sqlQuery string) (string, *results.PagedResults, error) {
	start := time.Now()

	rs, err := s.engine.Execute(ctx, sqlQuery)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		s.record(ctx, &domain.QueryHistoryEntry{
			SQLText:      sqlQuery,
			Status:       domain.QueryStatusError,
			ErrorMessage: errMessagePtr(err),
			DurationMs:   duration,
		})
		return "", nil, err
	}

	paged := results.NewPagedResults(rs)
	id := s.tables.Put(paged, sqlQuery)

	s.record(ctx, &domain.QueryHistoryEntry{
		SQLText:     sqlQuery,
		TableID:     id,
		ColumnCount: paged.ColumnCount(),
		Status:      domain.QueryStatusOK,
		DurationMs:  duration,
	})

	s.logger.Info("query executed", "table_id", id, "columns", paged.ColumnCount(), "duration_ms", duration)
	return id, paged, nil
}

// record inserts a history entry best-effort — history failures never fail
// the query.
func (s *QueryService) record(ctx context.Context, e *domain.QueryHistoryEntry) {
	if s.history == nil {
		return
	}
	if err := s.history.Insert(ctx, e); err != nil {
		s.logger.Warn("record query history", "error", err)
	}
}

func errMessagePtr(err error) *string {
	msg := err.Error()
	return &msg
}
