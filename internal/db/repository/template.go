// Package repository implements the domain repository ports over the SQLite
// metadata store.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"biomine/internal/domain"
)

// TemplateRepo stores saved query templates.
type TemplateRepo struct {
	db *sql.DB
}

func NewTemplateRepo(db *sql.DB) *TemplateRepo {
	return &TemplateRepo{db: db}
}

func (r *TemplateRepo) Insert(ctx context.Context, t *domain.Template) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO templates (id, name, title, aspect, sql_text, comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Title, t.Aspect, t.SQLText, t.Comment, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict("template %q already exists", t.Name)
		}
		return err
	}
	return nil
}

func (r *TemplateRepo) Update(ctx context.Context, t *domain.Template) error {
	t.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		UPDATE templates SET title = ?, aspect = ?, sql_text = ?, comment = ?, updated_at = ?
		WHERE name = ?`,
		t.Title, t.Aspect, t.SQLText, t.Comment, t.UpdatedAt, t.Name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("template %q not found", t.Name)
	}
	return nil
}

func (r *TemplateRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("template %q not found", name)
	}
	return nil
}

func (r *TemplateRepo) GetByName(ctx context.Context, name string) (*domain.Template, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, title, aspect, sql_text, comment, created_at, updated_at
		FROM templates WHERE name = ?`, name)

	t, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("template %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TemplateRepo) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.Template, int64, error) {
	where := ""
	args := []interface{}{}
	if filter.Aspect != nil {
		where = " WHERE aspect = ?"
		args = append(args, *filter.Aspect)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM templates`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(args, filter.Page.Limit(), filter.Page.Offset())
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, title, aspect, sql_text, comment, created_at, updated_at
		FROM templates`+where+`
		ORDER BY aspect, name LIMIT ? OFFSET ?`, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *t)
	}
	return out, total, rows.Err()
}

func (r *TemplateRepo) CountByAspect(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT aspect, count(*) FROM templates GROUP BY aspect`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	counts := make(map[string]int)
	for rows.Next() {
		var aspect string
		var n int
		if err := rows.Scan(&aspect, &n); err != nil {
			return nil, err
		}
		counts[aspect] = n
	}
	return counts, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTemplate(s scanner) (*domain.Template, error) {
	var t domain.Template
	err := s.Scan(&t.ID, &t.Name, &t.Title, &t.Aspect, &t.SQLText, &t.Comment, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure, without depending on driver error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
