package results

import (
	"context"
	"errors"

	"biomine/internal/domain"
)

// PagedResults binds the table window to a lazily-evaluated result sequence
// owned by the query engine. The source's lifetime is managed by the engine,
// not by the table.
//
// Size and status metadata come from the source on every call — the engine
// may refine an estimated count to an exact one in the background, so
// neither is cached here.
type PagedResults struct {
	*Table
	source domain.RowSource
}

// NewPagedResults builds a paged view over the given source using the
// source's own column schema.
func NewPagedResults(source domain.RowSource) *PagedResults {
	return NewPagedResultsWithColumns(source.Columns(), source)
}

// NewPagedResultsWithColumns builds a paged view with explicit column
// headings (display labels for the source's schema, in schema order).
func NewPagedResultsWithColumns(columnNames []string, source domain.RowSource) *PagedResults {
	return &PagedResults{Table: NewTable(columnNames), source: source}
}

// Rows returns the rows of the current window, [startRow, endRow]
// inclusive. The window may be shorter than a full page near the end of the
// results; when the window starts beyond the last row ErrPastEnd is
// returned so the caller can tell "no more rows" apart from a fetch
// failure. The first page of an empty result is an empty page, not an
// error.
func (p *PagedResults) Rows(ctx context.Context) ([]domain.Row, error) {
	rc, err := p.Count(ctx)
	if err != nil {
		return nil, err
	}
	return p.windowRows(ctx, rc)
}

// windowRows fetches [startRow, endRow] under the given count. An exact
// count can prove the window empty before the source is asked: the first
// page of an empty result is an empty page, and any later window is past
// the end.
func (p *PagedResults) windowRows(ctx context.Context, rc domain.RowCount) ([]domain.Row, error) {
	start := p.StartRow()
	end := p.Table.EndRow(rc)
	if end < start {
		if start == 0 {
			return nil, nil
		}
		return nil, domain.ErrPastEnd
	}
	return p.source.Range(ctx, start, end)
}

// Page returns the rows of the current window together with the tagged
// count that framed them. It runs the same refinement probe as Size, reads
// the count once, and renders a window past the end as empty rather than
// failing, so a page view needs a single call.
func (p *PagedResults) Page(ctx context.Context) ([]domain.Row, domain.RowCount, error) {
	start := p.StartRow()
	if _, err := p.source.Range(ctx, start, start+p.PageSize()); err != nil && !errors.Is(err, domain.ErrPastEnd) {
		return nil, domain.RowCount{}, err
	}
	rc, err := p.Count(ctx)
	if err != nil {
		return nil, domain.RowCount{}, err
	}
	rows, err := p.windowRows(ctx, rc)
	if err != nil && !errors.Is(err, domain.ErrPastEnd) {
		return nil, domain.RowCount{}, err
	}
	return rows, rc, nil
}

// Size returns the current (possibly estimated) number of rows. It first
// materializes one row beyond the nominal page window, which forces the
// engine to refine its estimate near the current page; probing past the
// true end is expected there and recovered. A count failure is fatal to the
// call — the paging contract is meaningless without size metadata.
func (p *PagedResults) Size(ctx context.Context) (int, error) {
	start := p.StartRow()
	if _, err := p.source.Range(ctx, start, start+p.PageSize()); err != nil {
		if !errors.Is(err, domain.ErrPastEnd) {
			return 0, err
		}
	}
	rc, err := p.source.Count(ctx)
	if err != nil {
		return 0, domain.ErrDataAccess(err, "get result size")
	}
	return rc.Rows, nil
}

// Count returns the tagged row count without the refinement probe.
func (p *PagedResults) Count(ctx context.Context) (domain.RowCount, error) {
	rc, err := p.source.Count(ctx)
	if err != nil {
		return domain.RowCount{}, domain.ErrDataAccess(err, "get result size")
	}
	return rc, nil
}

// IsSizeEstimate reports whether Size is still an estimate. A status
// failure propagates.
func (p *PagedResults) IsSizeEstimate(ctx context.Context) (bool, error) {
	rc, err := p.Count(ctx)
	if err != nil {
		return false, err
	}
	return !rc.Exact, nil
}

// EndRow returns the last row index of the current window under the
// source's current count.
func (p *PagedResults) EndRow(ctx context.Context) (int, error) {
	rc, err := p.Count(ctx)
	if err != nil {
		return 0, err
	}
	return p.Table.EndRow(rc), nil
}

// LastPage moves the window to the page containing the last row under the
// source's current count.
func (p *PagedResults) LastPage(ctx context.Context) error {
	rc, err := p.Count(ctx)
	if err != nil {
		return err
	}
	p.Table.LastPage(rc)
	return nil
}

// IsLastPage reports whether the window is on the last page. Always false
// while the count is an estimate.
func (p *PagedResults) IsLastPage(ctx context.Context) (bool, error) {
	rc, err := p.Count(ctx)
	if err != nil {
		return false, err
	}
	return p.Table.IsLastPage(rc), nil
}

// Source returns the underlying row source.
func (p *PagedResults) Source() domain.RowSource {
	return p.source
}
