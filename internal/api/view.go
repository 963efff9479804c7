package api

import (
	"context"

	"biomine/internal/results"
)

// ColumnView is a column of the table as the UI sees it: display position,
// original schema index, and visibility.
type ColumnView struct {
	Name         string `json:"name"`
	Index        int    `json:"index"`
	DisplayOrder int    `json:"display_order"`
	Visible      bool   `json:"visible"`
}

// TableView is one rendered window of a result table. Rows carry the cells
// of the visible columns in display order; Size is estimated until the
// engine proves the count, at which point SizeEstimate flips to false.
// EndRow is the index of the last row actually in the window and is omitted
// when the window holds no rows.
type TableView struct {
	TableID      string       `json:"table_id"`
	StartRow     int          `json:"start_row"`
	EndRow       *int         `json:"end_row,omitempty"`
	PageSize     int          `json:"page_size"`
	Size         int          `json:"size"`
	SizeEstimate bool         `json:"size_estimate"`
	IsFirstPage  bool         `json:"is_first_page"`
	IsLastPage   bool         `json:"is_last_page"`
	Columns      []ColumnView `json:"columns"`
	Rows         [][]string   `json:"rows"`
}

// renderTable builds the view of the current window. A window past the end
// of the results renders with no rows rather than failing — the UI shows an
// empty page there. One Page call fetches the rows and the tagged count
// together; the remaining metadata is window arithmetic over that count.
func renderTable(ctx context.Context, id string, paged *results.PagedResults) (*TableView, error) {
	rows, rc, err := paged.Page(ctx)
	if err != nil {
		return nil, err
	}

	columns := paged.Columns()
	view := &TableView{
		TableID:      id,
		StartRow:     paged.StartRow(),
		PageSize:     paged.PageSize(),
		Size:         rc.Rows,
		SizeEstimate: !rc.Exact,
		IsFirstPage:  paged.IsFirstPage(),
		IsLastPage:   paged.Table.IsLastPage(rc),
		Columns:      make([]ColumnView, 0, len(columns)),
		Rows:         make([][]string, 0, len(rows)),
	}
	if len(rows) > 0 {
		end := view.StartRow + len(rows) - 1
		view.EndRow = &end
	}
	for pos, col := range columns {
		view.Columns = append(view.Columns, ColumnView{
			Name:         col.Name,
			Index:        col.Index,
			DisplayOrder: pos,
			Visible:      col.Visible,
		})
	}
	for _, row := range rows {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			if !col.Visible {
				continue
			}
			if col.Index < len(row) {
				cells = append(cells, row[col.Index].String())
			}
		}
		view.Rows = append(view.Rows, cells)
	}
	return view, nil
}
