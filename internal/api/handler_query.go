package api

import (
	"net/http"
	"strconv"

	"biomine/internal/domain"
)

type executeQueryRequest struct {
	SQL string `json:"sql"`
}

// ExecuteQuery runs a SQL query and registers its result table. The response
// carries the new table id and the first page of results.
func (h *Handler) ExecuteQuery(w http.ResponseWriter, r *http.Request) {
	var req executeQueryRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	id, paged, err := h.queries.Execute(r.Context(), req.SQL)
	if err != nil {
		h.writeError(w, err)
		return
	}

	view, err := renderTable(r.Context(), id, paged)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// ListHistory returns past query executions, newest first.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	page := pageFromQuery(r)
	entries, total, err := h.history.List(r.Context(), page)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries":         entries,
		"total":           total,
		"next_page_token": domain.NextPageToken(page.Offset(), len(entries), total),
	})
}

// pageFromQuery extracts a PageRequest from optional max_results/page_token
// query params.
func pageFromQuery(r *http.Request) domain.PageRequest {
	p := domain.PageRequest{}
	if v := r.URL.Query().Get("max_results"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.MaxResults = n
		}
	}
	p.PageToken = r.URL.Query().Get("page_token")
	return p
}
