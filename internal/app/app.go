// Package app provides application-level wiring: repositories, services,
// and the result-table registry, built from the handles main() provides.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"biomine/internal/api"
	"biomine/internal/config"
	"biomine/internal/db/repository"
	"biomine/internal/engine"
	"biomine/internal/service"
)

// Deps holds the external dependencies that main() must provide: config,
// database handles, and the logger.
type Deps struct {
	Cfg     *config.Config
	DuckDB  *sql.DB
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// Services groups the service pointers the API handler needs.
type Services struct {
	Query    *service.QueryService
	Template *service.TemplateService
	Export   *service.ExportService
}

// App is the fully-wired application.
type App struct {
	Services Services
	Tables   *service.TableRegistry
	Engine   *engine.Engine
	History  *repository.QueryHistoryRepo
}

// New wires repositories, engine, and services from the provided deps. It
// seeds the embedded template set and, when configured, the demo genomic
// tables.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg

	templateRepo := repository.NewTemplateRepo(deps.WriteDB)
	// Inserts go through the write pool; the listing endpoint reads through
	// the read pool.
	historyRepo := repository.NewQueryHistoryRepo(deps.WriteDB)
	historyReader := repository.NewQueryHistoryRepo(deps.ReadDB)

	eng := engine.New(deps.DuckDB, deps.Logger.With("component", "engine"))
	eng.SetBatchSize(cfg.EngineBatchRows)

	tables := service.NewTableRegistry(cfg.TableTTL, deps.Logger.With("component", "tables"))
	if err := tables.StartSweeper(cfg.SweepSchedule); err != nil {
		return nil, fmt.Errorf("start table sweeper: %w", err)
	}

	querySvc := service.NewQueryService(eng, historyRepo, tables, deps.Logger.With("component", "query"))
	templateSvc := service.NewTemplateService(templateRepo, deps.Logger.With("component", "templates"))
	exportSvc := service.NewExportService(tables, deps.Logger.With("component", "export"))

	if err := templateSvc.Seed(ctx); err != nil {
		return nil, fmt.Errorf("seed templates: %w", err)
	}
	if cfg.SeedDemoData {
		if err := seedGenomeDB(ctx, deps.DuckDB); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		deps.Logger.Info("demo genomic data ready")
	}

	return &App{
		Services: Services{Query: querySvc, Template: templateSvc, Export: exportSvc},
		Tables:   tables,
		Engine:   eng,
		History:  historyReader,
	}, nil
}

// Handler builds the API handler over the wired services.
func (a *App) Handler(cfg *config.Config, logger *slog.Logger) *api.Handler {
	return api.NewHandler(a.Services.Query, a.Tables, a.Services.Template,
		a.Services.Export, a.History, api.HandlerConfig{
			MaxPageSize: cfg.MaxPageSize,
			Logger:      logger.With("component", "api"),
		})
}

// Shutdown stops background work.
func (a *App) Shutdown() {
	a.Tables.StopSweeper()
}
