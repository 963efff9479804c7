package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// PrintJSON writes v as indented JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintTable writes rows under upper-cased column headers.
func PrintTable(w io.Writer, columns []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(columns, "\t")))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

// printView renders one window of a result table with its paging footer.
func printView(w io.Writer, view *TableView) {
	headers := make([]string, 0, len(view.Columns))
	for _, col := range view.Columns {
		if col.Visible {
			headers = append(headers, col.Name)
		}
	}
	PrintTable(w, headers, view.Rows)

	qualifier := ""
	if view.SizeEstimate {
		qualifier = " (estimated)"
	}
	if view.EndRow == nil {
		fmt.Fprintf(w, "\nTable %s — no rows of %d%s, page size %d\n",
			view.TableID, view.Size, qualifier, view.PageSize)
		return
	}
	fmt.Fprintf(w, "\nTable %s — rows %d-%d of %d%s, page size %d\n",
		view.TableID, view.StartRow, *view.EndRow, view.Size, qualifier, view.PageSize)
}
