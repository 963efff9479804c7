package domain

import "fmt"

// ResultElement is one opaque cell of a result row. The paging core never
// interprets Value — exporters and UI bindings do.
type ResultElement struct {
	Value interface{}
}

// String renders the element value for display and export. NULL renders as
// the empty string.
func (e ResultElement) String() string {
	if e.Value == nil {
		return ""
	}
	if s, ok := e.Value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", e.Value)
}

// Row is an ordered sequence of result elements, one per original column
// index of the result schema.
type Row []ResultElement

// RowCount is a row count reported by the query engine, tagged with whether
// the engine has finished an exact count. An estimated count may later be
// refined, so callers must not cache it.
type RowCount struct {
	Rows  int
	Exact bool
}

// ExactCount builds a RowCount the engine has fully computed.
func ExactCount(n int) RowCount { return RowCount{Rows: n, Exact: true} }

// EstimatedCount builds a RowCount the engine is still refining.
func EstimatedCount(n int) RowCount { return RowCount{Rows: n, Exact: false} }
