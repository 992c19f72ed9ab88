package nudge

// Point is a screen cell coordinate, as reported by mouse events.
type Point struct {
	X, Y int
}

// Position is an element offset within its positioning context.
// Top and Left follow the usual box convention: positive Top moves the
// element down, positive Left moves it right.
type Position struct {
	Top, Left int
}

// Add returns the position shifted by d.
func (p Position) Add(d Delta) Position {
	return Position{Top: p.Top + d.DY, Left: p.Left + d.DX}
}

// Delta is pointer movement between two events, in cells.
type Delta struct {
	DX, DY int
}

// Rect is an axis-aligned region of screen cells. Right and Bottom are
// exclusive: a Rect{X: 0, Y: 0, W: 10, H: 5} covers columns 0-9 and rows 0-4.
type Rect struct {
	X, Y, W, H int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell at (x, y) lies within the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Shifted returns the rect translated by (dx, dy).
func (r Rect) Shifted(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
