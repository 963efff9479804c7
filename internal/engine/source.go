package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"biomine/internal/domain"
)

// ResultSet is a lazily-materialized view of one query's results. Rows are
// fetched from DuckDB in batches and cached in order; the total count is an
// estimate (the materialization high-water mark) until either the
// background COUNT(*) finishes or a fetch proves where the results end.
//
// ResultSet is safe for concurrent use; the paged tables reading from it
// are not, and serialize their own access.
type ResultSet struct {
	db      *sql.DB
	query   string
	columns []string
	batch   int
	logger  *slog.Logger

	mu       sync.Mutex
	cached   []domain.Row
	done     bool   // all rows materialized; len(cached) is the exact count
	exact    *int   // set when the background COUNT(*) completes
	countErr error  // sticky failure from the background count
}

func newResultSet(db *sql.DB, query string, columns []string, batch int, logger *slog.Logger) *ResultSet {
	return &ResultSet{db: db, query: query, columns: columns, batch: batch, logger: logger}
}

// Columns returns the column names in original schema order.
func (rs *ResultSet) Columns() []string {
	out := make([]string, len(rs.columns))
	copy(out, rs.columns)
	return out
}

// startBackgroundCount launches the exact COUNT(*) that upgrades the
// estimate. Runs detached from the request that created the result set.
func (rs *ResultSet) startBackgroundCount() {
	go func() {
		var n int
		err := rs.db.QueryRow(fmt.Sprintf("SELECT count(*) FROM (%s) AS q", rs.query)).Scan(&n)

		rs.mu.Lock()
		defer rs.mu.Unlock()
		if err != nil {
			rs.logger.Warn("background count failed", "error", err)
			rs.countErr = err
			return
		}
		rs.exact = &n
	}()
}

// Range returns the rows in [start, end] inclusive, materializing batches as
// needed. Overshooting the available rows returns what exists; a start
// beyond the final row returns domain.ErrPastEnd once the end is proven.
func (rs *ResultSet) Range(ctx context.Context, start, end int) ([]domain.Row, error) {
	if start < 0 || end < start {
		return nil, domain.ErrValidation("invalid row range [%d, %d]", start, end)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if err := rs.materialize(ctx, end); err != nil {
		return nil, err
	}

	if start >= len(rs.cached) {
		// materialize stopped short of the range, so the end is proven
		return nil, domain.ErrPastEnd
	}
	if end >= len(rs.cached) {
		end = len(rs.cached) - 1
	}

	out := make([]domain.Row, end-start+1)
	copy(out, rs.cached[start:end+1])
	return out, nil
}

// Count reports the current total. Exact once the background count has
// finished or all rows are cached; until then a lower-bound estimate. If
// the background count failed and the end is still unknown, the failure
// propagates — the paging contract needs valid size metadata.
func (rs *ResultSet) Count(ctx context.Context) (domain.RowCount, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	switch {
	case rs.done:
		return domain.ExactCount(len(rs.cached)), nil
	case rs.exact != nil:
		return domain.ExactCount(*rs.exact), nil
	case rs.countErr != nil:
		return domain.RowCount{}, domain.ErrDataAccess(rs.countErr, "count results")
	default:
		return domain.EstimatedCount(len(rs.cached)), nil
	}
}

// materialize extends the cache through row index `through` (or to the true
// end, whichever comes first). Caller holds rs.mu.
func (rs *ResultSet) materialize(ctx context.Context, through int) error {
	for len(rs.cached) <= through && !rs.done {
		fetched, err := rs.fetchBatch(ctx, len(rs.cached))
		if err != nil {
			return domain.ErrDataAccess(err, "fetch rows [%d, %d)", len(rs.cached), len(rs.cached)+rs.batch)
		}
		rs.cached = append(rs.cached, fetched...)
		if len(fetched) < rs.batch {
			rs.done = true
		}
	}
	return nil
}

// fetchBatch reads one batch of rows starting at the given offset.
func (rs *ResultSet) fetchBatch(ctx context.Context, offset int) ([]domain.Row, error) {
	q := fmt.Sprintf("SELECT * FROM (%s) AS q LIMIT %d OFFSET %d", rs.query, rs.batch, offset)
	rows, err := rs.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Row
	for rows.Next() {
		vals := make([]interface{}, len(rs.columns))
		ptrs := make([]interface{}, len(rs.columns))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(domain.Row, len(vals))
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[i] = domain.ResultElement{Value: v}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
