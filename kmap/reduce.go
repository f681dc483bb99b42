package kmap

// Reduce removes redundant groups in two passes.
//
// The first pass drops every group that lies entirely inside a different
// group:
//
//	x x x x
//	x o o x
//	x o o x
//	x x x x
//
// group o is inside group x and disappears.
//
// The second pass keeps only groups that cover at least one point no other
// survivor covers:
//
//	.[x x]x      . x[x x]      . x x[x]
//	. . . x      . . . x       . . .[x]
//
// the middle group brings nothing of its own and disappears, the outer two
// each own a point and stay. This is a greedy essential-implicant filter,
// not a minimum-cover solver: groups redundant only as a cycle may all
// survive.
func Reduce(groups []Group) []Group {
	outer := make([]Group, 0, len(groups))
	for i, g := range groups {
		contained := false
		for j, b := range groups {
			if i != j && g.In(b) {
				contained = true
				break
			}
		}
		if !contained {
			outer = append(outer, g)
		}
	}

	result := make([]Group, 0, len(outer))
	for i, g := range outer {
		others := make(map[Point]bool)
		for j, b := range outer {
			if i == j {
				continue
			}
			for _, p := range b.Points() {
				others[p] = true
			}
		}
		for _, p := range g.Points() {
			if !others[p] {
				result = append(result, g)
				break
			}
		}
	}
	return result
}

// FilteredGroups enumerates the groups for value v and removes the redundant
// ones.
func (m *Map) FilteredGroups(v bool) []Group {
	return Reduce(m.Groups(v))
}
