package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"name", "aspect"}, [][]string{
		{"gene_by_symbol", "Genomics"},
		{"protein_by_gene", "Proteins"},
	})

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "ASPECT")
	assert.Contains(t, out, "gene_by_symbol")
	assert.Contains(t, out, "Proteins")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]int{"rows": 3}))
	assert.JSONEq(t, `{"rows": 3}`, buf.String())
}

func TestPrintViewFooter(t *testing.T) {
	endRow := 19
	view := &TableView{
		TableID:      "abc",
		StartRow:     10,
		EndRow:       &endRow,
		PageSize:     10,
		Size:         42,
		SizeEstimate: true,
		Columns: []ColumnView{
			{Name: "symbol", Visible: true},
			{Name: "organism", Visible: false},
		},
		Rows: [][]string{{"zen"}},
	}

	var buf bytes.Buffer
	printView(&buf, view)

	out := buf.String()
	assert.Contains(t, out, "SYMBOL")
	assert.NotContains(t, out, "ORGANISM")
	assert.Contains(t, out, "rows 10-19 of 42 (estimated)")
}

func TestPrintViewFooterEmptyWindow(t *testing.T) {
	view := &TableView{
		TableID:  "abc",
		PageSize: 10,
		Columns:  []ColumnView{{Name: "symbol", Visible: true}},
	}

	var buf bytes.Buffer
	printView(&buf, view)

	assert.Contains(t, buf.String(), "no rows of 0, page size 10")
}
