package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomine/internal/domain"
	"biomine/internal/export"
	"biomine/internal/results"
	"biomine/internal/service"
	"biomine/internal/testutil"
)

func newExportFixture(t *testing.T) (*service.ExportService, string) {
	t.Helper()

	src := testutil.NewStaticSource(
		[]string{"gene_a", "interaction_type", "gene_b"},
		[][]string{
			{"zen", "physical", "eve"},
			{"zen", "genetic", "bcd"},
		},
	)
	reg := service.NewTableRegistry(time.Minute, nil)
	id := reg.Put(results.NewPagedResults(src), "SELECT ...")
	return service.NewExportService(reg, nil), id
}

func TestExportService_SIF(t *testing.T) {
	svc, id := newExportFixture(t)

	res, err := svc.Export(ctx, id, export.FormatSIF, export.Options{
		SourceColumn: 0, TypeColumn: 1, TargetColumn: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "results.sif", res.Filename)
	assert.Equal(t, "zen\tphysical\teve\nzen\tgenetic\tbcd\n", string(res.Data))
}

func TestExportService_TSV(t *testing.T) {
	svc, id := newExportFixture(t)

	res, err := svc.Export(ctx, id, export.FormatTSV, export.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Contains(t, string(res.Data), "gene_a\tinteraction_type\tgene_b\n")
}

func TestExportService_UnknownTable(t *testing.T) {
	svc, _ := newExportFixture(t)

	_, err := svc.Export(ctx, "missing", export.FormatTSV, export.Options{})
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestExportService_UnknownFormat(t *testing.T) {
	svc, id := newExportFixture(t)

	_, err := svc.Export(ctx, id, "xlsx", export.Options{})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestExportService_NothingToExport(t *testing.T) {
	reg := service.NewTableRegistry(time.Minute, nil)
	src := testutil.NewStaticSource([]string{"gene_a", "interaction_type", "gene_b"}, nil)
	id := reg.Put(results.NewPagedResults(src), "SELECT ...")
	svc := service.NewExportService(reg, nil)

	_, err := svc.Export(ctx, id, export.FormatSIF, export.Options{TargetColumn: 2, TypeColumn: 1})
	assert.ErrorIs(t, err, export.ErrNothingToExport)
}
