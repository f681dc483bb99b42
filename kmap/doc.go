// Package kmap minimizes boolean functions with the Karnaugh-map method.
//
// A Karnaugh map lays a truth table out on a two-dimensional grid whose rows
// and columns follow a Gray-code ordering, so that neighbouring cells differ
// in exactly one variable. Rectangular regions of cells that share the same
// output value then correspond to simplified terms of the function.
//
// The pipeline is a pure sequence of values: a truthtable.Table becomes an
// immutable Map, group enumeration finds every uniform rectangle drawn from
// a fixed nine-shape vocabulary, a two-pass filter removes contained and
// non-essential groups, and formula synthesis turns the survivors into a
// minimized expression.
//
// For example, the table of "A and B" minimizes to:
//
//	(A x B)
//
// with v = true (sum of products), and to:
//
//	(B) x (A)
//
// with v = false (product of sums).
//
// The filter is a greedy heuristic in the style of essential prime
// implicants, not a minimum-cover solver: groups that are redundant only as
// a cycle may all survive. Cells on opposite edges of the map are not
// treated as adjacent.
package kmap
