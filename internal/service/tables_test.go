package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomine/internal/domain"
	"biomine/internal/results"
	"biomine/internal/service"
	"biomine/internal/testutil"
)

func newStaticTable() *results.PagedResults {
	src := testutil.NewStaticSource([]string{"symbol", "organism"}, [][]string{
		{"zen", "D. melanogaster"},
		{"eve", "D. melanogaster"},
	})
	return results.NewPagedResults(src)
}

func TestTableRegistry_PutGet(t *testing.T) {
	reg := service.NewTableRegistry(time.Minute, nil)

	paged := newStaticTable()
	id := reg.Put(paged, "SELECT symbol, organism FROM genes")
	require.NotEmpty(t, id)

	got, err := reg.Get(id)
	require.NoError(t, err)
	assert.Same(t, paged, got)

	sqlText, err := reg.SQLText(id)
	require.NoError(t, err)
	assert.Equal(t, "SELECT symbol, organism FROM genes", sqlText)
}

func TestTableRegistry_GetMissing(t *testing.T) {
	reg := service.NewTableRegistry(time.Minute, nil)

	_, err := reg.Get("nope")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestTableRegistry_Remove(t *testing.T) {
	reg := service.NewTableRegistry(time.Minute, nil)

	id := reg.Put(newStaticTable(), "SELECT 1")
	reg.Remove(id)
	assert.Equal(t, 0, reg.Len())

	// Removing again is a no-op.
	reg.Remove(id)
}

func TestTableRegistry_SweepExpiresIdleTables(t *testing.T) {
	reg := service.NewTableRegistry(20*time.Millisecond, nil)

	stale := reg.Put(newStaticTable(), "SELECT 1")
	time.Sleep(30 * time.Millisecond)
	fresh := reg.Put(newStaticTable(), "SELECT 2")

	dropped := reg.Sweep()
	assert.Equal(t, 1, dropped)

	_, err := reg.Get(stale)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = reg.Get(fresh)
	assert.NoError(t, err)
}

func TestTableRegistry_GetRefreshesAccess(t *testing.T) {
	reg := service.NewTableRegistry(40*time.Millisecond, nil)

	id := reg.Put(newStaticTable(), "SELECT 1")
	time.Sleep(25 * time.Millisecond)

	_, err := reg.Get(id)
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, 0, reg.Sweep())
}
