package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"biomine/internal/domain"
)

// ListTemplates lists templates, optionally filtered by aspect.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	filter := domain.TemplateFilter{Page: pageFromQuery(r)}
	if v := r.URL.Query().Get("aspect"); v != "" {
		filter.Aspect = &v
	}

	templates, total, err := h.templates.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"templates":       templates,
		"total":           total,
		"next_page_token": domain.NextPageToken(filter.Page.Offset(), len(templates), total),
	})
}

// GetTemplate returns one template by name.
func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.templates.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

type saveTemplateRequest struct {
	Title   string `json:"title"`
	Aspect  string `json:"aspect"`
	SQL     string `json:"sql"`
	Comment string `json:"comment"`
}

// SaveTemplate creates or replaces the template with the name in the URL.
func (h *Handler) SaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req saveTemplateRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	tmpl := &domain.Template{
		Name:    chi.URLParam(r, "name"),
		Title:   req.Title,
		Aspect:  req.Aspect,
		SQLText: req.SQL,
		Comment: req.Comment,
	}
	if err := h.templates.Save(r.Context(), tmpl); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

// DeleteTemplate removes a template by name.
func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.templates.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RunTemplate executes a template's query and registers the result table,
// exactly like an ad-hoc query.
func (h *Handler) RunTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.templates.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	id, paged, err := h.queries.Execute(r.Context(), tmpl.SQLText)
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

// BeginPage returns the landing summary: each aspect with its template
// count and a capped list of templates.
func (h *Handler) BeginPage(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.templates.BeginPage(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"aspects": summaries})
}
