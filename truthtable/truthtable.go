// Package truthtable reads complete truth tables for boolean functions.
//
// A table is a plain-text description of a boolean function: the first line
// names the variables, each following line gives one full assignment and the
// function's output bit for it. For instance, the conjunction of two
// variables is written:
//
//	A B
//	0 0 0
//	0 1 0
//	1 0 0
//	1 1 1
//
// Parsing is deliberately forgiving: rows with missing or unparsable fields
// keep default (false) values instead of failing, so a degenerate input
// still yields a usable table.
package truthtable

// A Row is one entry of a truth table: a complete assignment of the declared
// variables together with the function's output bit for that assignment.
type Row struct {
	Values map[string]bool
	Output bool
}

// A Table is a parsed truth table: the declared variables, in order, and one
// row per entry.
type Table struct {
	Vars []string
	Rows []Row
}

// Split partitions the declared variables into the two map axes: the first
// half goes to the horizontal axis, the second half to the vertical axis.
// When the count is odd, the middle variable goes to the horizontal axis.
func (t *Table) Split() (h, v []string) {
	cut := len(t.Vars) / 2
	if len(t.Vars)%2 != 0 {
		cut++
	}
	return t.Vars[:cut], t.Vars[cut:]
}
