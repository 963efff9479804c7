package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteQueryReturnsFirstPage(t *testing.T) {
	router := newTestRouter(t)

	view := createTable(t, router, "SELECT id, symbol FROM genes ORDER BY id")
	assert.NotEmpty(t, view.TableID)
	assert.Equal(t, 0, view.StartRow)
	assert.Equal(t, 10, view.PageSize)
	assert.True(t, view.IsFirstPage)
	require.Len(t, view.Rows, 10)
	assert.Equal(t, []string{"1", "G01"}, view.Rows[0])
	require.Len(t, view.Columns, 2)
	assert.Equal(t, "symbol", view.Columns[1].Name)
	assert.True(t, view.Columns[1].Visible)
}

func TestExecuteQueryRejectsNonSelect(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/queries", map[string]string{"sql": "DROP TABLE genes"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecuteQueryBadBody(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/queries", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryListsExecutions(t *testing.T) {
	router := newTestRouter(t)

	createTable(t, router, "SELECT id FROM genes")
	doJSON(t, router, http.MethodPost, "/v1/queries", map[string]string{"sql": "DROP TABLE genes"})

	rec := doJSON(t, router, http.MethodGet, "/v1/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Entries []struct {
			Status string `json:"status"`
		} `json:"entries"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 2, body.Total)
	require.Len(t, body.Entries, 2)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
