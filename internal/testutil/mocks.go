// Package testutil provides shared fakes for unit tests.
package testutil

import (
	"context"

	"biomine/internal/domain"
)

// StaticSource is an in-memory domain.RowSource over a fixed row slice. It
// mimics the engine's counting behaviour: the count is an estimate until a
// range request proves where the rows end.
type StaticSource struct {
	Cols     []string
	Data     []domain.Row
	Exact    bool
	CountErr error
	RangeErr error
}

// NewStaticSource builds a source from string cells.
func NewStaticSource(columns []string, rows [][]string) *StaticSource {
	s := &StaticSource{Cols: columns}
	for _, r := range rows {
		row := make(domain.Row, len(r))
		for i, v := range r {
			row[i] = domain.ResultElement{Value: v}
		}
		s.Data = append(s.Data, row)
	}
	return s
}

func (s *StaticSource) Range(ctx context.Context, start, end int) ([]domain.Row, error) {
	if s.RangeErr != nil {
		return nil, s.RangeErr
	}
	// Same order as the engine: malformed bounds are rejected before the
	// past-end check.
	if start < 0 || end < start {
		return nil, domain.ErrValidation("invalid row range [%d, %d]", start, end)
	}
	if start >= len(s.Data) {
		s.Exact = true
		return nil, domain.ErrPastEnd
	}
	if end >= len(s.Data) {
		s.Exact = true
		end = len(s.Data) - 1
	}
	return s.Data[start : end+1], nil
}

func (s *StaticSource) Count(ctx context.Context) (domain.RowCount, error) {
	if s.CountErr != nil {
		return domain.RowCount{}, s.CountErr
	}
	if s.Exact {
		return domain.ExactCount(len(s.Data)), nil
	}
	return domain.EstimatedCount(len(s.Data)), nil
}

func (s *StaticSource) Columns() []string { return s.Cols }
