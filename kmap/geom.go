package kmap

// A Point is an integer position on the map grid, counted from the top-left
// corner.
type Point struct {
	X, Y int
}

// A Group is an axis-aligned rectangle of map cells, given by its top-left
// corner and its size in cells.
type Group struct {
	Start, Size Point
}

// In reports whether g lies entirely inside other. Equal rectangles count as
// contained.
func (g Group) In(other Group) bool {
	return g.Start.X >= other.Start.X &&
		g.Start.Y >= other.Start.Y &&
		g.Start.X+g.Size.X <= other.Start.X+other.Size.X &&
		g.Start.Y+g.Size.Y <= other.Start.Y+other.Size.Y
}

// Points enumerates every grid position the group covers.
func (g Group) Points() []Point {
	pts := make([]Point, 0, g.Size.X*g.Size.Y)
	for x := 0; x < g.Size.X; x++ {
		for y := 0; y < g.Size.Y; y++ {
			pts = append(pts, Point{g.Start.X + x, g.Start.Y + y})
		}
	}
	return pts
}
