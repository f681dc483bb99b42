package kmap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kherio/karnaugh/truthtable"
)

const andTable = `A B
0 0 0
0 1 0
1 0 0
1 1 1
`

const xor2Table = `A B
0 0 0
0 1 1
1 0 1
1 1 0
`

const constTrueTable = `A B
0 0 1
0 1 1
1 0 1
1 1 1
`

const constFalseTable = `A B
0 0 0
0 1 0
1 0 0
1 1 0
`

// threeVarTable is f(A, B, C) = A; the odd variable count puts A and B on
// the horizontal axis.
const threeVarTable = `A B C
0 0 0 0
0 0 1 0
0 1 0 0
0 1 1 0
1 0 0 1
1 0 1 1
1 1 0 1
1 1 1 1
`

// xor4Table is f(A, B, C, D) = A xor B, one row per assignment.
func xor4Table() string {
	var sb strings.Builder
	sb.WriteString("A B C D\n")
	for i := 0; i < 16; i++ {
		a, b, c, d := i>>3&1, i>>2&1, i>>1&1, i&1
		fmt.Fprintf(&sb, "%d %d %d %d %d\n", a, b, c, d, a^b)
	}
	return sb.String()
}

func mustMap(t *testing.T, input string) *Map {
	t.Helper()
	tab, err := truthtable.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return New(tab)
}

func mustTable(t *testing.T, input string) *truthtable.Table {
	t.Helper()
	tab, err := truthtable.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return tab
}

func TestNewSizes(t *testing.T) {
	m := mustMap(t, andTable)
	assert.Equal(t, 2, m.SizeX())
	assert.Equal(t, 2, m.SizeY())
	assert.Equal(t, 4, m.Size())
	assert.False(t, m.Empty())

	m = mustMap(t, threeVarTable)
	assert.Equal(t, 4, m.SizeX())
	assert.Equal(t, 2, m.SizeY())

	m = mustMap(t, xor4Table())
	assert.Equal(t, 4, m.SizeX())
	assert.Equal(t, 4, m.SizeY())
}

func TestValue(t *testing.T) {
	m := mustMap(t, andTable)
	// Single-variable axes order cells plainly: x follows A, y follows B.
	for _, test := range []struct {
		x, y  int
		value bool
	}{
		{0, 0, false}, {0, 1, false}, {1, 0, false}, {1, 1, true},
	} {
		value, ok := m.Value(test.x, test.y)
		require.True(t, ok, "cell (%d,%d) should exist", test.x, test.y)
		assert.Equal(t, test.value, value, "cell (%d,%d)", test.x, test.y)
	}
	_, ok := m.Value(2, 0)
	assert.False(t, ok)
	_, ok = m.Value(-1, 0)
	assert.False(t, ok)
}

func TestGrayColumnOrder(t *testing.T) {
	// With A and B on the horizontal axis, columns follow the Gray sequence
	// 00, 01, 11, 10 over (A, B).
	m := mustMap(t, threeVarTable)
	wantA := []bool{false, false, true, true}
	wantB := []bool{false, true, true, false}
	for x := 0; x < 4; x++ {
		h := m.ColVars(x)
		require.NotNil(t, h, "column %d", x)
		assert.Equal(t, wantA[x], h["A"], "A at column %d", x)
		assert.Equal(t, wantB[x], h["B"], "B at column %d", x)
	}
}

func TestAssignment(t *testing.T) {
	m := mustMap(t, andTable)
	h, v, ok := m.Assignment(1, 1)
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"A": true}, h)
	assert.Equal(t, map[string]bool{"B": true}, v)
	_, _, ok = m.Assignment(5, 5)
	assert.False(t, ok)
}

func TestRowColVars(t *testing.T) {
	m := mustMap(t, andTable)
	assert.Equal(t, map[string]bool{"A": false}, m.ColVars(0))
	assert.Equal(t, map[string]bool{"B": true}, m.RowVars(1))
	assert.Nil(t, m.ColVars(7))
	assert.Nil(t, m.RowVars(-1))
}

func TestMissingRowsLeaveCellsAbsent(t *testing.T) {
	m := mustMap(t, "A B\n0 0 1\n1 1 1\n")
	_, ok := m.Value(0, 1)
	assert.False(t, ok, "cell for the missing row should be absent")
	value, ok := m.Value(0, 0)
	require.True(t, ok)
	assert.True(t, value)
}

func TestFromFile(t *testing.T) {
	m := FromFile("testdata/and.tt")
	require.False(t, m.Empty())
	assert.Equal(t, "(A x B)", m.SOP())
}

func TestFromFileMissing(t *testing.T) {
	m := FromFile("testdata/no-such-file.tt")
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Size())
	assert.Empty(t, m.Formula(true))
	assert.Equal(t, "", m.FormulaString(true))
	assert.Equal(t, "", m.FormulaString(false))
}
