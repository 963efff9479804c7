package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"biomine/internal/api"
	internaldb "biomine/internal/db"
	"biomine/internal/db/repository"
	"biomine/internal/engine"
	"biomine/internal/service"
)

var ctx = context.Background()

// newTestRouter wires a full router over an in-memory DuckDB with 25 genes
// and a fresh SQLite metastore.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	duckDB, err := sql.Open("duckdb", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = duckDB.Close() })

	_, err = duckDB.ExecContext(ctx, `CREATE TABLE genes (id INTEGER, symbol VARCHAR, organism VARCHAR)`)
	require.NoError(t, err)
	for i := 1; i <= 25; i++ {
		_, err = duckDB.ExecContext(ctx, `INSERT INTO genes VALUES (?, ?, ?)`,
			i, fmt.Sprintf("G%02d", i), "D. melanogaster")
		require.NoError(t, err)
	}

	writeDB, _ := internaldb.OpenTestSQLite(t)
	historyRepo := repository.NewQueryHistoryRepo(writeDB)
	templateRepo := repository.NewTemplateRepo(writeDB)

	tables := service.NewTableRegistry(time.Minute, nil)
	eng := engine.New(duckDB, nil)
	queries := service.NewQueryService(eng, historyRepo, tables, nil)
	templates := service.NewTemplateService(templateRepo, nil)
	exports := service.NewExportService(tables, nil)

	h := api.NewHandler(queries, tables, templates, exports, historyRepo, api.HandlerConfig{MaxPageSize: 100})
	return api.NewRouter(h, api.RouterConfig{})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) api.TableView {
	t.Helper()
	var view api.TableView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

// createTable runs a query and returns the rendered first page.
func createTable(t *testing.T, router http.Handler, sqlText string) api.TableView {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/v1/queries", map[string]string{"sql": sqlText})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeView(t, rec)
}
