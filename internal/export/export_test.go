package export_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomine/internal/export"
	"biomine/internal/results"
	"biomine/internal/testutil"
)

var ctx = context.Background()

func interactionTable(rows [][]string) *results.PagedResults {
	src := testutil.NewStaticSource([]string{"gene_a", "interaction_type", "gene_b"}, rows)
	return results.NewPagedResults(src)
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := export.New("xlsx", export.Options{})
	require.Error(t, err)
}

func TestSIFExport(t *testing.T) {
	table := interactionTable([][]string{
		{"wg", "pp", "arm"},
		{"wg", "pp", "dsh"},
		{"hh", "pp", "ptc"},
	})
	table.SetPageSize(2) // force multi-page traversal

	exp, err := export.New(export.FormatSIF, export.Options{SourceColumn: 0, TypeColumn: 1, TargetColumn: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := exp.Export(ctx, &buf, table)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"wg\tpp\tarm",
		"wg\tpp\tdsh",
		"hh\tpp\tptc",
	}, lines)
}

func TestSIFExportDeduplicates(t *testing.T) {
	table := interactionTable([][]string{
		{"wg", "pp", "arm"},
		{"wg", "pp", "arm"},
		{"wg", "genetic", "arm"},
	})

	exp := export.NewSIFExporter(export.Options{SourceColumn: 0, TypeColumn: 1, TargetColumn: 2})

	var buf bytes.Buffer
	n, err := exp.Export(ctx, &buf, table)
	require.NoError(t, err)

	// Identical interactions collapse; a different type is a new edge.
	assert.Equal(t, 2, n)
}

func TestSIFExportDefaultType(t *testing.T) {
	table := interactionTable([][]string{
		{"wg", "", "arm"},
	})

	exp := export.NewSIFExporter(export.Options{SourceColumn: 0, TypeColumn: -1, TargetColumn: 2})

	var buf bytes.Buffer
	_, err := exp.Export(ctx, &buf, table)
	require.NoError(t, err)
	assert.Equal(t, "wg\tpp\tarm\n", buf.String())
}

func TestSIFExportNothingToExport(t *testing.T) {
	// Rows exist but none yields a complete interaction.
	table := interactionTable([][]string{
		{"", "pp", "arm"},
		{"wg", "pp", ""},
	})

	exp := export.NewSIFExporter(export.Options{SourceColumn: 0, TypeColumn: 1, TargetColumn: 2})

	var buf bytes.Buffer
	n, err := exp.Export(ctx, &buf, table)
	assert.ErrorIs(t, err, export.ErrNothingToExport)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len(), "no artifact may be written when there is nothing to export")
}

func TestSIFExportColumnOutOfRange(t *testing.T) {
	table := interactionTable([][]string{{"wg", "pp", "arm"}})

	exp := export.NewSIFExporter(export.Options{SourceColumn: 0, TypeColumn: 1, TargetColumn: 9})

	var buf bytes.Buffer
	_, err := exp.Export(ctx, &buf, table)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestSIFExportRestoresWindow(t *testing.T) {
	table := interactionTable([][]string{
		{"a", "pp", "b"},
		{"c", "pp", "d"},
		{"e", "pp", "f"},
	})
	table.SetPageSize(1)
	table.NextPage()
	require.Equal(t, 1, table.StartRow())

	exp := export.NewSIFExporter(export.Options{SourceColumn: 0, TypeColumn: 1, TargetColumn: 2})

	var buf bytes.Buffer
	_, err := exp.Export(ctx, &buf, table)
	require.NoError(t, err)

	assert.Equal(t, 1, table.StartRow(), "export must not move the caller's page window")
}

func TestTSVExport(t *testing.T) {
	src := testutil.NewStaticSource([]string{"symbol", "organism", "length"}, [][]string{
		{"wg", "D. melanogaster", "468"},
		{"hh", "D. melanogaster", "471"},
	})
	table := results.NewPagedResults(src)

	// Hide the middle column and swap the remaining two.
	table.SetColumnVisible(1, false)
	table.MoveColumnRight(0) // display: organism(hidden), symbol? — move swaps 0 and 1

	exp := export.NewTSVExporter()

	var buf bytes.Buffer
	n, err := exp.Export(ctx, &buf, table)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "symbol\tlength", lines[0])
	assert.Equal(t, "wg\t468", lines[1])
	assert.Equal(t, "hh\t471", lines[2])
}

func TestTSVExportEmptyTable(t *testing.T) {
	src := testutil.NewStaticSource([]string{"symbol"}, nil)
	table := results.NewPagedResults(src)

	var buf bytes.Buffer
	_, err := export.NewTSVExporter().Export(ctx, &buf, table)
	assert.ErrorIs(t, err, export.ErrNothingToExport)
	assert.Zero(t, buf.Len())
}
