// Package service wires the query engine, metadata repositories, and
// exporters into the operations the HTTP layer exposes.
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"biomine/internal/domain"
	"biomine/internal/results"
)

// DefaultTableTTL is how long an untouched result table stays registered.
const DefaultTableTTL = 30 * time.Minute

// sessionTable is one registered result table plus its bookkeeping.
type sessionTable struct {
	paged      *results.PagedResults
	sqlText    string
	createdAt  time.Time
	lastAccess time.Time
}

// TableRegistry holds the live result tables of the current sessions, keyed
// by table id. The registry lock guards the map only — each table itself
// follows the single-goroutine usage model, and requests for the same table
// must be serialized by the caller (the UI issues them sequentially).
type TableRegistry struct {
	mu     sync.Mutex
	tables map[string]*sessionTable
	ttl    time.Duration
	logger *slog.Logger
	cron   *cron.Cron
}

// NewTableRegistry creates a registry expiring tables after ttl without
// access. A non-positive ttl falls back to DefaultTableTTL.
func NewTableRegistry(ttl time.Duration, logger *slog.Logger) *TableRegistry {
	if ttl <= 0 {
		ttl = DefaultTableTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TableRegistry{
		tables: make(map[string]*sessionTable),
		ttl:    ttl,
		logger: logger,
	}
}

// Put registers a table and returns its id.
func (r *TableRegistry) Put(paged *results.PagedResults, sqlText string) string {
	id := uuid.NewString()
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[id] = &sessionTable{paged: paged, sqlText: sqlText, createdAt: now, lastAccess: now}
	return id
}

// Get returns the table with the given id and refreshes its access time.
func (r *TableRegistry) Get(id string) (*results.PagedResults, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.tables[id]
	if !ok {
		return nil, domain.ErrNotFound("table %q not found (expired or never created)", id)
	}
	st.lastAccess = time.Now()
	return st.paged, nil
}

// SQLText returns the query text a table was created from.
func (r *TableRegistry) SQLText(id string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.tables[id]
	if !ok {
		return "", domain.ErrNotFound("table %q not found (expired or never created)", id)
	}
	return st.sqlText, nil
}

// Remove drops a table. Unknown ids are ignored.
func (r *TableRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables, id)
}

// Len returns the number of registered tables.
func (r *TableRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tables)
}

// Sweep removes tables idle past the TTL and returns how many were dropped.
func (r *TableRegistry) Sweep() int {
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, st := range r.tables {
		if st.lastAccess.Before(cutoff) {
			delete(r.tables, id)
			dropped++
		}
	}
	if dropped > 0 {
		r.logger.Info("expired result tables", "dropped", dropped, "remaining", len(r.tables))
	}
	return dropped
}

// StartSweeper schedules a periodic Sweep using the given cron spec (e.g.
// "@every 5m").
func (r *TableRegistry) StartSweeper(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { r.Sweep() }); err != nil {
		return err
	}
	c.Start()
	r.cron = c
	return nil
}

// StopSweeper stops the periodic sweep, if one was started.
func (r *TableRegistry) StopSweeper() {
	if r.cron != nil {
		r.cron.Stop()
	}
}
