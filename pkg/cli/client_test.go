package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientExecuteQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/queries", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"table_id":"t1","page_size":10,"rows":[["zen"]]}`))
	}))
	defer srv.Close()

	view, err := NewClient(srv.URL).ExecuteQuery("SELECT symbol FROM genes")
	require.NoError(t, err)
	assert.Equal(t, "t1", view.TableID)
	assert.Equal(t, [][]string{{"zen"}}, view.Rows)
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"table \"x\" not found"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetTable("x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	assert.Contains(t, apiErr.Message, "not found")
}

func TestClientExportNotice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sif", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"nothing was found to export"}`))
	}))
	defer srv.Close()

	data, notice, err := NewClient(srv.URL).Export("t1", "sif", "")
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "nothing was found to export", notice)
}

func TestClientExportFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="results.tsv"`)
		_, _ = w.Write([]byte("id\tsymbol\n1\tzen\n"))
	}))
	defer srv.Close()

	data, notice, err := NewClient(srv.URL).Export("t1", "tsv", "")
	require.NoError(t, err)
	assert.Empty(t, notice)
	assert.Equal(t, "id\tsymbol\n1\tzen\n", string(data))
}
