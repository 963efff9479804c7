// Package results implements the paged result-table core: a windowed,
// column-configurable view over a lazily-evaluated result sequence whose
// total size may only be an estimate.
package results

// Column is one column of a result table. Index is the column's position in
// the original, unreordered result schema and never changes after
// construction; only the owning table's display order and the Visible flag
// are mutable.
type Column struct {
	Name    string
	Index   int
	Visible bool
}
