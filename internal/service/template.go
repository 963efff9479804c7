package service

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"biomine/internal/domain"
)

//go:embed templates.yaml
var seedTemplates []byte

// BeginPageAspectLimit caps how many templates each aspect shows on the
// landing summary.
const BeginPageAspectLimit = 10

// AspectSummary is one aspect's slice of the landing summary.
type AspectSummary struct {
	Aspect    string            `json:"aspect"`
	Total     int               `json:"total"`
	Templates []domain.Template `json:"templates"`
}

// TemplateService manages predefined queries grouped by data aspect.
type TemplateService struct {
	repo   domain.TemplateRepository
	logger *slog.Logger
}

func NewTemplateService(repo domain.TemplateRepository, logger *slog.Logger) *TemplateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateService{repo: repo, logger: logger}
}

func (s *TemplateService) Get(ctx context.Context, name string) (*domain.Template, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *TemplateService) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.Template, int64, error) {
	return s.repo.List(ctx, filter)
}

// Save inserts a template, or updates it when one with the same name exists.
func (s *TemplateService) Save(ctx context.Context, tmpl *domain.Template) error {
	if err := validateTemplate(tmpl); err != nil {
		return err
	}
	err := s.repo.Insert(ctx, tmpl)
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return s.repo.Update(ctx, tmpl)
	}
	return err
}

func (s *TemplateService) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}

// BeginPage assembles the landing summary: every aspect with its template
// count and up to BeginPageAspectLimit templates, aspects sorted by name.
func (s *TemplateService) BeginPage(ctx context.Context) ([]AspectSummary, error) {
	counts, err := s.repo.CountByAspect(ctx)
	if err != nil {
		return nil, err
	}

	aspects := make([]string, 0, len(counts))
	for aspect := range counts {
		aspects = append(aspects, aspect)
	}
	sort.Strings(aspects)

	out := make([]AspectSummary, 0, len(aspects))
	for _, aspect := range aspects {
		a := aspect
		tmpls, _, err := s.repo.List(ctx, domain.TemplateFilter{
			Aspect: &a,
			Page:   domain.PageRequest{MaxResults: BeginPageAspectLimit},
		})
		if err != nil {
			return nil, err
		}
		out = append(out, AspectSummary{Aspect: aspect, Total: counts[aspect], Templates: tmpls})
	}
	return out, nil
}

// Seed loads the embedded template set, skipping names already present.
func (s *TemplateService) Seed(ctx context.Context) error {
	var doc struct {
		Templates []struct {
			Name    string `yaml:"name"`
			Title   string `yaml:"title"`
			Aspect  string `yaml:"aspect"`
			SQL     string `yaml:"sql"`
			Comment string `yaml:"comment"`
		} `yaml:"templates"`
	}
	if err := yaml.Unmarshal(seedTemplates, &doc); err != nil {
		return domain.ErrDataAccess(err, "parse embedded templates")
	}

	seeded := 0
	for _, t := range doc.Templates {
		tmpl := &domain.Template{
			Name:    t.Name,
			Title:   t.Title,
			Aspect:  t.Aspect,
			SQLText: strings.TrimSpace(t.SQL),
			Comment: t.Comment,
		}
		err := s.repo.Insert(ctx, tmpl)
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			continue
		}
		if err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		s.logger.Info("seeded templates", "count", seeded)
	}
	return nil
}

func validateTemplate(tmpl *domain.Template) error {
	if strings.TrimSpace(tmpl.Name) == "" {
		return domain.ErrValidation("template name must not be empty")
	}
	if strings.TrimSpace(tmpl.Aspect) == "" {
		return domain.ErrValidation("template aspect must not be empty")
	}
	if strings.TrimSpace(tmpl.SQLText) == "" {
		return domain.ErrValidation("template sql must not be empty")
	}
	return nil
}
