package results

import "biomine/internal/domain"

// DefaultPageSize is the number of rows per page when none is configured.
const DefaultPageSize = 10

// Table holds the display state of a paged result table: the column sequence
// in display order plus the current page window. It is independent of any
// data source; arithmetic that depends on the total row count takes the
// engine's tagged count explicitly, so an estimated count can never be
// silently used as exact.
//
// A Table is meant for single-goroutine use within one request/session
// scope. Callers sharing one across goroutines must serialize access.
type Table struct {
	columns  []*Column
	startRow int
	pageSize int
}

// NewTable builds a table from the column names of the original result
// schema, in schema order. All columns start visible.
func NewTable(columnNames []string) *Table {
	t := &Table{pageSize: DefaultPageSize}
	for i, name := range columnNames {
		t.columns = append(t.columns, &Column{Name: name, Index: i, Visible: true})
	}
	return t
}

// Columns returns the columns in display order. The returned slice is a
// copy; the Column pointers are shared with the table.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnCount returns the total number of columns regardless of visibility.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// VisibleColumnCount returns the number of columns currently displayed.
func (t *Table) VisibleColumnCount() int {
	count := 0
	for _, c := range t.columns {
		if c.Visible {
			count++
		}
	}
	return count
}

// MoveColumnLeft swaps the column at the given display position with its
// left neighbour. Out-of-range positions are silently ignored — invalid
// display indices come straight from the UI and are treated as no-ops
// rather than errors.
func (t *Table) MoveColumnLeft(index int) {
	if index > 0 && index <= len(t.columns)-1 {
		t.columns[index-1], t.columns[index] = t.columns[index], t.columns[index-1]
	}
}

// MoveColumnRight swaps the column at the given display position with its
// right neighbour. Out-of-range positions are silently ignored.
func (t *Table) MoveColumnRight(index int) {
	if index >= 0 && index < len(t.columns)-1 {
		t.columns[index], t.columns[index+1] = t.columns[index+1], t.columns[index]
	}
}

// SetColumnVisible sets the visibility of the column at the given display
// position. Out-of-range positions are silently ignored.
func (t *Table) SetColumnVisible(index int, visible bool) {
	if index >= 0 && index < len(t.columns) {
		t.columns[index].Visible = visible
	}
}

// FirstPage moves the window to the first page.
func (t *Table) FirstPage() {
	t.startRow = 0
}

// IsFirstPage reports whether the window is on the first page.
func (t *Table) IsFirstPage() bool {
	return t.startRow == 0
}

// PreviousPage moves the window back one page. There is no lower clamp:
// callers are expected to check IsFirstPage first, matching the navigation
// contract the UI relies on.
func (t *Table) PreviousPage() {
	t.startRow -= t.pageSize
}

// NextPage moves the window forward one page. There is no upper clamp
// against the total size — under an estimated count the true end is
// unknown, and the row fetch resolves overshoot.
func (t *Table) NextPage() {
	t.startRow += t.pageSize
}

// LastPage moves the window to the page containing the last row of the
// given count. With zero rows the window stays on the first page.
func (t *Table) LastPage(rc domain.RowCount) {
	t.startRow = ((rc.Rows - 1) / t.pageSize) * t.pageSize
	if t.startRow < 0 {
		t.startRow = 0
	}
}

// IsLastPage reports whether the window is on the last page. While the
// count is an estimate this is always false — without an exact count the
// table cannot know it has reached the end.
func (t *Table) IsLastPage(rc domain.RowCount) bool {
	return rc.Exact && t.EndRow(rc) == rc.Rows-1
}

// EndRow returns the index of the last row of the current window. When the
// count is exact the window is clamped to the final row; when it is an
// estimate the nominal window is returned unclamped, and a page may extend
// past the available rows until a fetch proves otherwise.
func (t *Table) EndRow(rc domain.RowCount) int {
	endRow := t.startRow + t.pageSize - 1
	if rc.Exact && endRow+1 > rc.Rows {
		return rc.Rows - 1
	}
	return endRow
}

// SetPageSize changes the rows-per-page and re-snaps the window so startRow
// stays aligned to a page boundary of the new size. Non-positive sizes are
// silently ignored.
func (t *Table) SetPageSize(pageSize int) {
	if pageSize <= 0 {
		return
	}
	t.pageSize = pageSize
	t.startRow = (t.startRow / pageSize) * pageSize
}

// StartRow returns the zero-based offset of the first row of the window.
func (t *Table) StartRow() int {
	return t.startRow
}

// PageSize returns the current rows-per-page.
func (t *Table) PageSize() int {
	return t.pageSize
}
