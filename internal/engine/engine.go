// Package engine executes read-only SQL against the DuckDB genome warehouse
// and exposes results as lazily-materialized row sources with exact/estimated
// counting.
package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"biomine/internal/domain"
)

// DefaultBatchSize is the number of rows fetched from DuckDB per
// materialization step.
const DefaultBatchSize = 100

// Engine wraps a DuckDB connection and turns query text into lazy result
// sources. Only single SELECT statements are accepted — the warehouse is
// read-only from the presentation layer.
type Engine struct {
	db        *sql.DB
	logger    *slog.Logger
	batchSize int
}

// New creates an Engine over the given DuckDB connection.
func New(db *sql.DB, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{db: db, logger: logger, batchSize: DefaultBatchSize}
}

// SetBatchSize overrides the per-fetch row batch size. Values below 1 are
// ignored.
func (e *Engine) SetBatchSize(n int) {
	if n >= 1 {
		e.batchSize = n
	}
}

// Execute validates the statement, captures the result schema, and returns
// a ResultSet over it. An exact COUNT(*) starts in the background; until it
// completes the result set reports its size as an estimate.
func (e *Engine) Execute(ctx context.Context, sqlQuery string) (*ResultSet, error) {
	if err := validateSelect(sqlQuery); err != nil {
		return nil, err
	}

	columns, err := e.querySchema(ctx, sqlQuery)
	if err != nil {
		return nil, domain.ErrDataAccess(err, "resolve result schema")
	}

	rs := newResultSet(e.db, sqlQuery, columns, e.batchSize, e.logger)
	rs.startBackgroundCount()
	return rs, nil
}

// querySchema runs the query with a zero-row window to capture column names
// without materializing data.
func (e *Engine) querySchema(ctx context.Context, sqlQuery string) ([]string, error) {
	rows, err := e.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM (%s) AS q LIMIT 0", sqlQuery))
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return columns, nil
}

// validateSelect accepts a single SELECT (or WITH ... SELECT) statement and
// rejects everything else.
func validateSelect(sqlQuery string) error {
	stripped := stripLeadingComments(sqlQuery)
	if stripped == "" {
		return domain.ErrValidation("empty query")
	}

	upper := strings.ToUpper(stripped)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return domain.ErrValidation("only SELECT queries are allowed")
	}

	// Reject multi-statement input. A trailing semicolon is tolerated.
	if rest := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(stripped), ";")); strings.Contains(rest, ";") {
		return domain.ErrValidation("multiple statements are not allowed")
	}
	return nil
}

// stripLeadingComments removes leading whitespace, line comments, and block
// comments so statement classification sees the first keyword.
func stripLeadingComments(s string) string {
	for {
		s = strings.TrimSpace(s)
		switch {
		case strings.HasPrefix(s, "--"):
			idx := strings.IndexByte(s, '\n')
			if idx < 0 {
				return ""
			}
			s = s[idx+1:]
		case strings.HasPrefix(s, "/*"):
			idx := strings.Index(s, "*/")
			if idx < 0 {
				return ""
			}
			s = s[idx+2:]
		default:
			return s
		}
	}
}
