package rectpack

import "fmt"

// A Point is a 2D point, or a size.
type Point struct {
	X int
	Y int
}

// A Rect is an axis-aligned rectangle containing the points with Min.X <= x <
// Max.X and Min.Y <= y < Max.Y. A rectangle with zero width or height is
// degenerate and has no area.
type Rect struct {
	Min Point
	Max Point
}

// NewRect returns the rectangle with corners (x1, y1) and (x2, y2).
func NewRect(x1, y1, x2, y2 int) Rect {
	return Rect{
		Min: Point{X: x1, Y: y1},
		Max: Point{X: x2, Y: y2},
	}
}

// String returns the rectangle as "(x1,y1)-(x2,y2)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy returns the height of the rectangle.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Size returns the width and height of the rectangle.
func (r Rect) Size() Point {
	return Point{X: r.Dx(), Y: r.Dy()}
}

// Area returns the area of the rectangle.
func (r Rect) Area() int {
	return r.Dx() * r.Dy()
}

// Empty returns true if the rectangle is degenerate.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Overlaps returns true if the rects have an intersection with positive area.
// Rectangles which only share an edge do not overlap, and degenerate
// rectangles overlap nothing.
func (r Rect) Overlaps(o Rect) bool {
	return r.Max.X > o.Min.X && o.Max.X > r.Min.X && r.Max.Y > o.Min.Y && o.Max.Y > r.Min.Y &&
		!r.Empty() && !o.Empty()
}

// Contains returns true if this rect contains the given rect.
func (r Rect) Contains(o Rect) bool {
	return r.Min.X <= o.Min.X && r.Max.X >= o.Max.X && r.Min.Y <= o.Min.Y && r.Max.Y >= o.Max.Y
}

// Fits returns true if a rectangle with the given width and height fits inside
// this rectangle without rotation.
func (r Rect) Fits(w, h int) bool {
	return w <= r.Dx() && h <= r.Dy()
}

// Split returns the parts of r which remain after removing o. Returns false if
// the rectangles do not overlap.
//
// The remainder is cut into at most four disjoint strips: a full-width strip
// above o, strips to the left and right of o spanning the rows o covers, and a
// full-width strip below o. Strips with no area are omitted.
func (r Rect) Split(o Rect) ([]Rect, bool) {
	if !r.Overlaps(o) {
		return nil, false
	}
	// Clip o to r.
	c := o
	if c.Min.X < r.Min.X {
		c.Min.X = r.Min.X
	}
	if c.Min.Y < r.Min.Y {
		c.Min.Y = r.Min.Y
	}
	if c.Max.X > r.Max.X {
		c.Max.X = r.Max.X
	}
	if c.Max.Y > r.Max.Y {
		c.Max.Y = r.Max.Y
	}
	splits := make([]Rect, 0, 4)
	if c.Min.Y > r.Min.Y {
		splits = append(splits, NewRect(r.Min.X, r.Min.Y, r.Max.X, c.Min.Y))
	}
	if c.Min.X > r.Min.X {
		splits = append(splits, NewRect(r.Min.X, c.Min.Y, c.Min.X, c.Max.Y))
	}
	if c.Max.X < r.Max.X {
		splits = append(splits, NewRect(c.Max.X, c.Min.Y, r.Max.X, c.Max.Y))
	}
	if c.Max.Y < r.Max.Y {
		splits = append(splits, NewRect(r.Min.X, c.Max.Y, r.Max.X, r.Max.Y))
	}
	return splits, true
}
