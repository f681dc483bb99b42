package kmap

// The nine group shapes of a four-variable Karnaugh map, denoted by width
// and height in cells:
//
//	1.     2.         3.
//	x      x x        x
//	                  x
//	       4.
//	       x x x x
//
//	5.     6.         7.
//	x x    x x x x    x x
//	x x    x x x x    x x
//	                  x x
//	8.           9.   x x
//	x x x x      x
//	x x x x      x
//	x x x x      x
//	x x x x      x
var shapes = []Point{
	{1, 1}, {2, 1}, {1, 2}, {4, 1}, {1, 4}, {2, 2}, {4, 2}, {2, 4}, {4, 4},
}

// Groups returns every group whose shape is in the vocabulary above, whose
// origin keeps it inside the map bounds, and whose covered cells all hold
// value v. Positions without a cell never fail the test, so a group covering
// absent cells can still be accepted. The result is not yet filtered for
// redundancy.
func (m *Map) Groups(v bool) []Group {
	var result []Group
	for _, shape := range shapes {
		for x := 0; x <= m.sizeX-shape.X; x++ {
			for y := 0; y <= m.sizeY-shape.Y; y++ {
				g := Group{Start: Point{x, y}, Size: shape}
				if m.uniform(g, v) {
					result = append(result, g)
				}
			}
		}
	}
	return result
}

// uniform reports whether every cell present under g has output v.
//
//	1 1              1 0
//	1 1              1 1
//	true             false
func (m *Map) uniform(g Group, v bool) bool {
	for _, p := range g.Points() {
		if value, ok := m.Value(p.X, p.Y); ok && value != v {
			return false
		}
	}
	return true
}
