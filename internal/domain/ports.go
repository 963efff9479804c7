package domain

import "context"

// RowSource is a lazily-evaluated result sequence owned by the query engine.
// Implementations may materialize rows on demand and may only know an
// estimated total until counting completes in the background.
type RowSource interface {
	// Range returns the rows in [start, end] inclusive. When the range
	// overshoots the available rows it returns the rows that do exist;
	// when start itself is beyond the last row it returns ErrPastEnd.
	// Any other failure is a data-access error.
	Range(ctx context.Context, start, end int) ([]Row, error)

	// Count reports the current (possibly estimated) total row count.
	Count(ctx context.Context) (RowCount, error)

	// Columns returns the column names of the result schema, in original
	// schema order.
	Columns() []string
}

// TemplateRepository stores saved query templates.
type TemplateRepository interface {
	Insert(ctx context.Context, t *Template) error
	Update(ctx context.Context, t *Template) error
	Delete(ctx context.Context, name string) error
	GetByName(ctx context.Context, name string) (*Template, error)
	List(ctx context.Context, filter TemplateFilter) ([]Template, int64, error)
	CountByAspect(ctx context.Context) (map[string]int, error)
}

// QueryHistoryRepository records executed queries for the history view.
type QueryHistoryRepository interface {
	Insert(ctx context.Context, e *QueryHistoryEntry) error
	List(ctx context.Context, page PageRequest) ([]QueryHistoryEntry, int64, error)
}
