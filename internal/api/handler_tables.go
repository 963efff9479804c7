package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"biomine/internal/domain"
	"biomine/internal/export"
	"biomine/internal/results"
)

// GetTable renders the current window of a registered table.
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tableID")
	paged, err := h.tables.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.renderAndWrite(w, r, id, paged)
}

// DeleteTable drops a table from the registry.
func (h *Handler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	h.tables.Remove(chi.URLParam(r, "tableID"))
	w.WriteHeader(http.StatusNoContent)
}

type changePageRequest struct {
	Action string `json:"action"` // first, previous, next, last
}

// ChangePage moves the window of a table and renders the new page.
// PreviousPage on the first page is rejected rather than producing a
// negative window.
func (h *Handler) ChangePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tableID")
	paged, err := h.tables.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req changePageRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	switch req.Action {
	case "first":
		paged.FirstPage()
	case "previous":
		if !paged.IsFirstPage() {
			paged.PreviousPage()
		}
	case "next":
		last, err := paged.IsLastPage(r.Context())
		if err != nil {
			h.writeError(w, err)
			return
		}
		if !last {
			paged.NextPage()
		}
	case "last":
		if err := paged.LastPage(r.Context()); err != nil {
			h.writeError(w, err)
			return
		}
	default:
		h.writeError(w, domain.ErrValidation("unknown page action %q", req.Action))
		return
	}

	h.renderAndWrite(w, r, id, paged)
}

type changePageSizeRequest struct {
	PageSize int `json:"page_size"`
}

// ChangePageSize changes the rows-per-page of a table. The window re-snaps
// to a page boundary of the new size.
func (h *Handler) ChangePageSize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tableID")
	paged, err := h.tables.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req changePageSizeRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.PageSize <= 0 || req.PageSize > h.maxPageSize {
		h.writeError(w, domain.ErrValidation("page_size must be between 1 and %d", h.maxPageSize))
		return
	}

	paged.SetPageSize(req.PageSize)
	h.renderAndWrite(w, r, id, paged)
}

type moveColumnRequest struct {
	Direction string `json:"direction"` // left or right
}

// MoveColumn swaps a column with its neighbour in display order. A move at
// the edge of the table is a no-op and still returns the current view.
func (h *Handler) MoveColumn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tableID")
	paged, err := h.tables.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	index, err := columnIndexParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req moveColumnRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	switch req.Direction {
	case "left":
		paged.MoveColumnLeft(index)
	case "right":
		paged.MoveColumnRight(index)
	default:
		h.writeError(w, domain.ErrValidation("direction must be \"left\" or \"right\""))
		return
	}

	h.renderAndWrite(w, r, id, paged)
}

type columnVisibilityRequest struct {
	Visible bool `json:"visible"`
}

// SetColumnVisibility shows or hides a column by display position.
func (h *Handler) SetColumnVisibility(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tableID")
	paged, err := h.tables.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	index, err := columnIndexParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req columnVisibilityRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	paged.SetColumnVisible(index, req.Visible)
	h.renderAndWrite(w, r, id, paged)
}

// ExportTable streams a full export of a table. An export that yields no
// entities returns a JSON notice instead of an empty attachment.
func (h *Handler) ExportTable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tableID")
	q := r.URL.Query()

	opts := export.Options{
		SourceColumn: intQueryParam(q.Get("source_column"), 0),
		TargetColumn: intQueryParam(q.Get("target_column"), 2),
		TypeColumn:   intQueryParam(q.Get("type_column"), -1),
	}

	res, err := h.exports.Export(r.Context(), id, q.Get("format"), opts)
	if errors.Is(err, export.ErrNothingToExport) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "nothing was found to export"})
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	_, _ = w.Write(res.Data)
}

func (h *Handler) renderAndWrite(w http.ResponseWriter, r *http.Request, id string, paged *results.PagedResults) {
	view, err := renderTable(r.Context(), id, paged)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func columnIndexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrValidation("column index %q is not a number", raw)
	}
	return index, nil
}

func intQueryParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return fallback
}
