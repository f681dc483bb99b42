package kmap

import "strings"

// VarResult describes how one variable appears in a synthesized term.
type VarResult int

const (
	// VNull marks a variable that does not appear in the term.
	VNull VarResult = iota
	// VTrue marks a variable whose literal appears unnegated.
	VTrue
	// VFalse marks a variable whose literal appears negated.
	VFalse
)

// A Term assigns a VarResult to every declared variable. One term is
// synthesized per surviving group.
type Term map[string]VarResult

// Formula synthesizes the terms of the minimized expression for target
// value v: true yields sum-of-products terms, false product-of-sums terms.
// A variable appears in a term only when it holds a single value across
// every cell the corresponding group covers; the literal is unnegated when
// that value equals v. The map is never modified, so repeated calls yield
// identical results.
func (m *Map) Formula(v bool) []Term {
	groups := m.FilteredGroups(v)
	terms := make([]Term, 0, len(groups))
	for _, g := range groups {
		cells := m.cellsIn(g)
		term := make(Term, len(m.vars))
		for _, name := range m.vars {
			term[name] = constantIn(cells, name, v)
		}
		terms = append(terms, term)
	}
	return terms
}

// FormulaString renders the minimized expression for target value v.
//
//	v = true  -> sum of products, e.g. (!A x B) + (A x !B)
//	v = false -> product of sums, e.g. (!A + B) x (A + !B)
//
// Literals print in declared variable order, ! marks a negated literal,
// absent variables are omitted. A term with no literals renders as "()"; an
// empty term list renders as "".
func (m *Map) FormulaString(v bool) string {
	outer, inner := " + ", " x "
	if !v {
		outer, inner = " x ", " + "
	}
	var sb strings.Builder
	for i, t := range m.Formula(v) {
		if i > 0 {
			sb.WriteString(outer)
		}
		var lits []string
		for _, name := range m.vars {
			switch t[name] {
			case VTrue:
				lits = append(lits, name)
			case VFalse:
				lits = append(lits, "!"+name)
			}
		}
		sb.WriteByte('(')
		sb.WriteString(strings.Join(lits, inner))
		sb.WriteByte(')')
	}
	return sb.String()
}

// SOP returns the minimized sum-of-products expression.
func (m *Map) SOP() string { return m.FormulaString(true) }

// POS returns the minimized product-of-sums expression.
func (m *Map) POS() string { return m.FormulaString(false) }

// Eval evaluates the expression described by terms under the given model.
// SOP terms (sop true) form a disjunction of per-term conjunctions, POS
// terms a conjunction of per-term disjunctions. VNull variables are
// ignored; a term with no literals is true as a product and false as a sum.
func Eval(terms []Term, sop bool, model map[string]bool) bool {
	if sop {
		for _, t := range terms {
			if t.product(model) {
				return true
			}
		}
		return false
	}
	for _, t := range terms {
		if !t.sum(model) {
			return false
		}
	}
	return true
}

// product reports whether every literal of the term holds under model.
func (t Term) product(model map[string]bool) bool {
	for name, r := range t {
		if r == VNull {
			continue
		}
		if model[name] != (r == VTrue) {
			return false
		}
	}
	return true
}

// sum reports whether at least one literal of the term holds under model.
func (t Term) sum(model map[string]bool) bool {
	for name, r := range t {
		if r == VNull {
			continue
		}
		if model[name] == (r == VTrue) {
			return true
		}
	}
	return false
}

// cellsIn collects the cells present under g, column by column.
func (m *Map) cellsIn(g Group) []*cell {
	var cells []*cell
	for _, p := range g.Points() {
		if c := m.at(p.X, p.Y); c != nil {
			cells = append(cells, c)
		}
	}
	return cells
}

// constantIn decides how a variable appears in the term of a group accepted
// for value v. The variable must be found in every covered cell's
// assignments with one and the same value; anything else makes it VNull.
func constantIn(cells []*cell, name string, v bool) VarResult {
	var value, seen bool
	for _, c := range cells {
		val, ok := c.h[name]
		if !ok {
			val, ok = c.v[name]
		}
		if !ok {
			return VNull
		}
		if !seen {
			value, seen = val, true
		} else if val != value {
			return VNull
		}
	}
	if !seen {
		return VNull
	}
	if value == v {
		return VTrue
	}
	return VFalse
}
