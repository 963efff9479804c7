package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"biomine/internal/domain"
)

// QueryHistoryRepo records executed queries.
type QueryHistoryRepo struct {
	db *sql.DB
}

func NewQueryHistoryRepo(db *sql.DB) *QueryHistoryRepo {
	return &QueryHistoryRepo{db: db}
}

func (r *QueryHistoryRepo) Insert(ctx context.Context, e *domain.QueryHistoryEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO query_history (id, sql_text, table_id, column_count, status, error_message, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SQLText, e.TableID, e.ColumnCount, e.Status, e.ErrorMessage, e.DurationMs, e.CreatedAt)
	return err
}

func (r *QueryHistoryRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.QueryHistoryEntry, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM query_history`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sql_text, table_id, column_count, status, error_message, duration_ms, created_at
		FROM query_history
		ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.QueryHistoryEntry
	for rows.Next() {
		var e domain.QueryHistoryEntry
		if err := rows.Scan(&e.ID, &e.SQLText, &e.TableID, &e.ColumnCount,
			&e.Status, &e.ErrorMessage, &e.DurationMs, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}
