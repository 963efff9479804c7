package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomine/internal/domain"
)

func columnNames(t *Table) []string {
	names := make([]string, 0, t.ColumnCount())
	for _, c := range t.Columns() {
		names = append(names, c.Name)
	}
	return names
}

func TestNewTable(t *testing.T) {
	tbl := NewTable([]string{"A", "B", "C"})

	assert.Equal(t, 3, tbl.ColumnCount())
	assert.Equal(t, 3, tbl.VisibleColumnCount())
	assert.Equal(t, 0, tbl.StartRow())
	assert.Equal(t, DefaultPageSize, tbl.PageSize())

	// Index reflects original schema order and all columns start visible.
	for i, c := range tbl.Columns() {
		assert.Equal(t, i, c.Index)
		assert.True(t, c.Visible)
	}
}

func TestMoveColumn(t *testing.T) {
	tbl := NewTable([]string{"A", "B", "C"})

	tbl.MoveColumnLeft(1)
	assert.Equal(t, []string{"B", "A", "C"}, columnNames(tbl))

	// Moving back restores the original display order.
	tbl.MoveColumnRight(0)
	assert.Equal(t, []string{"A", "B", "C"}, columnNames(tbl))

	// Display reorder never touches the schema index.
	tbl.MoveColumnRight(0)
	for _, c := range tbl.Columns() {
		switch c.Name {
		case "A":
			assert.Equal(t, 0, c.Index)
		case "B":
			assert.Equal(t, 1, c.Index)
		case "C":
			assert.Equal(t, 2, c.Index)
		}
	}
}

func TestMoveColumnBounds(t *testing.T) {
	tbl := NewTable([]string{"A", "B", "C"})

	// All of these are silent no-ops.
	tbl.MoveColumnLeft(0)
	tbl.MoveColumnLeft(-1)
	tbl.MoveColumnLeft(3)
	tbl.MoveColumnRight(2)
	tbl.MoveColumnRight(-1)
	tbl.MoveColumnRight(99)

	assert.Equal(t, []string{"A", "B", "C"}, columnNames(tbl))
}

func TestColumnVisibility(t *testing.T) {
	tbl := NewTable([]string{"A", "B", "C"})

	tbl.SetColumnVisible(1, false)
	assert.Equal(t, 2, tbl.VisibleColumnCount())
	assert.Equal(t, 3, tbl.ColumnCount())

	// Out of range is a no-op.
	tbl.SetColumnVisible(7, false)
	assert.Equal(t, 2, tbl.VisibleColumnCount())

	tbl.SetColumnVisible(1, true)
	assert.Equal(t, 3, tbl.VisibleColumnCount())
}

func TestPageNavigation(t *testing.T) {
	tbl := NewTable([]string{"A"})

	require.True(t, tbl.IsFirstPage())

	tbl.NextPage()
	assert.Equal(t, 10, tbl.StartRow())
	assert.False(t, tbl.IsFirstPage())

	tbl.NextPage()
	assert.Equal(t, 20, tbl.StartRow())

	tbl.PreviousPage()
	assert.Equal(t, 10, tbl.StartRow())

	tbl.FirstPage()
	assert.True(t, tbl.IsFirstPage())
	assert.Equal(t, 0, tbl.StartRow())
}

func TestPreviousPageHasNoLowerClamp(t *testing.T) {
	// Callers are expected to check IsFirstPage before navigating back; the
	// raw operation does not clamp.
	tbl := NewTable([]string{"A"})

	tbl.PreviousPage()
	assert.Equal(t, -10, tbl.StartRow())
	assert.False(t, tbl.IsFirstPage())
}

func TestLastPageExactCount(t *testing.T) {
	// 25 exact rows, page size 10: last page starts at 20, ends at 24.
	tbl := NewTable([]string{"A", "B", "C"})
	rc := domain.ExactCount(25)

	tbl.LastPage(rc)
	assert.Equal(t, 20, tbl.StartRow())
	assert.Equal(t, 24, tbl.EndRow(rc))
	assert.True(t, tbl.IsLastPage(rc))
}

func TestLastPageExactMultiple(t *testing.T) {
	tbl := NewTable([]string{"A"})
	rc := domain.ExactCount(30)

	tbl.LastPage(rc)
	assert.Equal(t, 20, tbl.StartRow())
	assert.Equal(t, 29, tbl.EndRow(rc))
	assert.True(t, tbl.IsLastPage(rc))
}

func TestLastPageEmpty(t *testing.T) {
	tbl := NewTable([]string{"A"})

	tbl.LastPage(domain.ExactCount(0))
	assert.Equal(t, 0, tbl.StartRow())
}

func TestIsLastPageNeverTrueForEstimates(t *testing.T) {
	tbl := NewTable([]string{"A"})

	// Only 3 rows actually exist, but while the count is an estimate the
	// table cannot know it has reached the end.
	assert.False(t, tbl.IsLastPage(domain.EstimatedCount(3)))

	tbl.LastPage(domain.EstimatedCount(3))
	assert.False(t, tbl.IsLastPage(domain.EstimatedCount(3)))

	tbl.NextPage()
	tbl.NextPage()
	assert.False(t, tbl.IsLastPage(domain.EstimatedCount(3)))
}

func TestEndRowClampedOnlyWhenExact(t *testing.T) {
	tbl := NewTable([]string{"A"})

	// Exact: clamped to the final row.
	assert.Equal(t, 4, tbl.EndRow(domain.ExactCount(5)))

	// Estimate: nominal window, unclamped.
	assert.Equal(t, 9, tbl.EndRow(domain.EstimatedCount(5)))
}

func TestEndRowNeverExceedsExactSize(t *testing.T) {
	tbl := NewTable([]string{"A"})
	for _, n := range []int{1, 5, 10, 11, 25, 100} {
		rc := domain.ExactCount(n)
		tbl.FirstPage()
		for i := 0; i < 12; i++ {
			assert.LessOrEqual(t, tbl.EndRow(rc), n-1)
			tbl.NextPage()
		}
	}
}

func TestSetPageSizeResnapsStartRow(t *testing.T) {
	tbl := NewTable([]string{"A"})

	tbl.NextPage()
	tbl.NextPage()
	tbl.NextPage() // startRow = 30, pageSize = 10

	tbl.SetPageSize(25)
	assert.Equal(t, 25, tbl.PageSize())
	assert.Equal(t, 25, tbl.StartRow())
	assert.Zero(t, tbl.StartRow()%25)

	tbl.SetPageSize(7)
	assert.Equal(t, 21, tbl.StartRow())
	assert.Zero(t, tbl.StartRow()%7)
}

func TestSetPageSizeProperty(t *testing.T) {
	// After any SetPageSize(p): startRow mod p == 0 and startRow does not
	// move forward.
	for _, start := range []int{0, 10, 30, 70} {
		for _, p := range []int{1, 3, 7, 10, 25} {
			tbl := NewTable([]string{"A"})
			for i := 0; i < start/10; i++ {
				tbl.NextPage()
			}
			before := tbl.StartRow()
			tbl.SetPageSize(p)
			assert.Zero(t, tbl.StartRow()%p)
			assert.LessOrEqual(t, tbl.StartRow(), before)
		}
	}
}

func TestSetPageSizeIgnoresNonPositive(t *testing.T) {
	tbl := NewTable([]string{"A"})
	tbl.NextPage()

	tbl.SetPageSize(0)
	assert.Equal(t, DefaultPageSize, tbl.PageSize())
	assert.Equal(t, 10, tbl.StartRow())

	tbl.SetPageSize(-5)
	assert.Equal(t, DefaultPageSize, tbl.PageSize())
}
