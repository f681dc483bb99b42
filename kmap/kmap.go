package kmap

import (
	"github.com/kherio/karnaugh/truthtable"
)

// A cell is one populated position of the map: the partial assignments that
// place it on each axis and the function's output bit there.
type cell struct {
	h, v  map[string]bool
	value bool
}

// A Map is a Karnaugh map built once from a truth table and immutable
// afterwards. Cells live in a dense grid indexed by (x + y*sizeX); positions
// no truth-table row produced stay nil and never constrain grouping.
type Map struct {
	vars         []string // declared order, drives term rendering
	hVars, vVars []string // per-axis variables, in declared order
	grid         []*cell
	sizeX, sizeY int
}

// New builds a map from a parsed truth table. Each row's values are split
// between the two axes, and each axis assignment is located in the Gray
// ordering to give the cell its coordinates. A value tuple with no match in
// the ordering lands at position 0; a row for coordinates already occupied
// overwrites the earlier cell.
func New(t *truthtable.Table) *Map {
	m := &Map{vars: t.Vars}
	if len(t.Vars) == 0 && len(t.Rows) == 0 {
		return m
	}
	m.hVars, m.vVars = t.Split()
	m.sizeX = 1 << uint(len(m.hVars))
	m.sizeY = 1 << uint(len(m.vVars))
	m.grid = make([]*cell, m.sizeX*m.sizeY)
	hOrder := GraySequence(len(m.hVars))
	vOrder := GraySequence(len(m.vVars))
	for _, row := range t.Rows {
		h, x := axisCoord(m.hVars, row.Values, hOrder)
		v, y := axisCoord(m.vVars, row.Values, vOrder)
		m.grid[y*m.sizeX+x] = &cell{h: h, v: v, value: row.Output}
	}
	return m
}

// FromFile builds a map from the truth table stored at path. A missing or
// unreadable file yields an empty map rather than an error.
func FromFile(path string) *Map {
	t, err := truthtable.ParseFile(path)
	if err != nil {
		t = &truthtable.Table{}
	}
	return New(t)
}

// axisCoord extracts the axis assignment for vars from a row's values and
// locates its value tuple in the Gray ordering. Variables missing from the
// row stay false; a tuple absent from the ordering maps to coordinate 0.
func axisCoord(vars []string, values map[string]bool, order [][]bool) (map[string]bool, int) {
	assign := make(map[string]bool, len(vars))
	tuple := make([]bool, len(vars))
	for i, name := range vars {
		assign[name] = values[name]
		tuple[i] = values[name]
	}
	for i, seq := range order {
		if equalTuple(seq, tuple) {
			return assign, i
		}
	}
	return assign, 0
}

func equalTuple(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SizeX returns the width of the map in cells.
func (m *Map) SizeX() int { return m.sizeX }

// SizeY returns the height of the map in cells.
func (m *Map) SizeY() int { return m.sizeY }

// Size returns the total number of grid positions.
func (m *Map) Size() int { return m.sizeX * m.sizeY }

// Empty reports whether the map holds no grid at all, as produced from a
// missing input file.
func (m *Map) Empty() bool { return m.Size() == 0 }

// Value returns the output bit of the cell at (x, y). ok is false when no
// truth-table row produced a cell there or the position is out of bounds.
func (m *Map) Value(x, y int) (value, ok bool) {
	c := m.at(x, y)
	if c == nil {
		return false, false
	}
	return c.value, true
}

// Assignment returns the horizontal and vertical variable assignments of the
// cell at (x, y). ok is false when the cell is absent.
func (m *Map) Assignment(x, y int) (h, v map[string]bool, ok bool) {
	c := m.at(x, y)
	if c == nil {
		return nil, nil, false
	}
	return c.h, c.v, true
}

// ColVars returns the horizontal-axis assignment shared by column x, taken
// from any cell present on that column, or nil if the column is empty.
func (m *Map) ColVars(x int) map[string]bool {
	for y := 0; y < m.sizeY; y++ {
		if c := m.at(x, y); c != nil {
			return c.h
		}
	}
	return nil
}

// RowVars returns the vertical-axis assignment shared by row y, taken from
// any cell present on that row, or nil if the row is empty.
func (m *Map) RowVars(y int) map[string]bool {
	for x := 0; x < m.sizeX; x++ {
		if c := m.at(x, y); c != nil {
			return c.v
		}
	}
	return nil
}

func (m *Map) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= m.sizeX || y >= m.sizeY {
		return nil
	}
	return m.grid[y*m.sizeX+x]
}
