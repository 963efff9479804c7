// Package api exposes the paged result tables, templates, and exports over
// HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"biomine/internal/domain"
	"biomine/internal/middleware"
	"biomine/internal/service"
)

// Handler carries the services the HTTP endpoints delegate to.
type Handler struct {
	queries     *service.QueryService
	tables      *service.TableRegistry
	templates   *service.TemplateService
	exports     *service.ExportService
	history     domain.QueryHistoryRepository
	maxPageSize int
	logger      *slog.Logger
}

// HandlerConfig bundles the knobs NewHandler needs beyond the services.
type HandlerConfig struct {
	MaxPageSize int
	Logger      *slog.Logger
}

func NewHandler(queries *service.QueryService, tables *service.TableRegistry,
	templates *service.TemplateService, exports *service.ExportService,
	history domain.QueryHistoryRepository, cfg HandlerConfig) *Handler {
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 1000
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Handler{
		queries:     queries,
		tables:      tables,
		templates:   templates,
		exports:     exports,
		history:     history,
		maxPageSize: cfg.MaxPageSize,
		logger:      cfg.Logger,
	}
}

// RouterConfig holds the middleware settings for NewRouter.
type RouterConfig struct {
	RateLimitRPS       float64
	RateLimitBurst     int
	CORSAllowedOrigins []string
}

// NewRouter builds the chi router with the standard middleware chain.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		}))
	}
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/queries", h.ExecuteQuery)
		r.Get("/history", h.ListHistory)
		r.Get("/begin", h.BeginPage)

		r.Route("/tables/{tableID}", func(r chi.Router) {
			r.Get("/", h.GetTable)
			r.Delete("/", h.DeleteTable)
			r.Post("/page", h.ChangePage)
			r.Post("/page-size", h.ChangePageSize)
			r.Post("/columns/{index}/move", h.MoveColumn)
			r.Post("/columns/{index}/visibility", h.SetColumnVisibility)
			r.Get("/export", h.ExportTable)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", h.ListTemplates)
			r.Get("/{name}", h.GetTemplate)
			r.Put("/{name}", h.SaveTemplate)
			r.Delete("/{name}", h.DeleteTemplate)
			r.Post("/{name}/run", h.RunTemplate)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]interface{}{
		"code":    status,
		"message": err.Error(),
	})
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrValidation("invalid request body: %v", err)
	}
	return nil
}
