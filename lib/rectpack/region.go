package rectpack

// A Region is a node in a tree which tracks the free space in a rectangle.
//
// A leaf region is entirely free. Once a rectangle is removed from a leaf, the
// leaf is split and its children cover the space that remains. Children never
// overlap each other. A split region with no children has been consumed
// entirely.
type Region struct {
	rect     Rect
	split    bool
	children []*Region
}

// NewRegion returns a region where all of the given rectangle is free.
func NewRegion(r Rect) *Region {
	return &Region{rect: r}
}

// Rect returns the rectangle covered by this region.
func (g *Region) Rect() Rect {
	return g.rect
}

// FindFit returns a free rectangle with the given size. The rectangle is placed
// in the top-left corner of the first leaf it fits in, visiting children in the
// order they were created. Returns false if there is no space.
func (g *Region) FindFit(w, h int) (Rect, bool) {
	r := g.rect
	if !r.Fits(w, h) {
		return Rect{}, false
	}
	if !g.split {
		return NewRect(r.Min.X, r.Min.Y, r.Min.X+w, r.Min.Y+h), true
	}
	for _, c := range g.children {
		if fit, ok := c.FindFit(w, h); ok {
			return fit, true
		}
	}
	return Rect{}, false
}

// IsEmpty returns true if there is no free space left in the region.
func (g *Region) IsEmpty() bool {
	return g.split && len(g.children) == 0
}

// RemoveRect marks the given rectangle as used.
func (g *Region) RemoveRect(r Rect) {
	if !g.split {
		splits, ok := g.rect.Split(r)
		if !ok {
			return
		}
		g.split = true
		g.children = make([]*Region, len(splits))
		for i, s := range splits {
			g.children[i] = NewRegion(s)
		}
		return
	}
	if !g.rect.Overlaps(r) {
		return
	}
	children := g.children[:0]
	for _, c := range g.children {
		c.RemoveRect(r)
		if !c.IsEmpty() {
			children = append(children, c)
		}
	}
	for i := len(children); i < len(g.children); i++ {
		g.children[i] = nil
	}
	g.children = children
}

// FreeArea returns the total free area in the region.
func (g *Region) FreeArea() (area int) {
	g.walk(func(r Rect) { area += r.Area() })
	return
}

// Leaves returns the free rectangles in the region, in the order FindFit
// visits them.
func (g *Region) Leaves() (rs []Rect) {
	g.walk(func(r Rect) { rs = append(rs, r) })
	return
}

func (g *Region) walk(f func(r Rect)) {
	if !g.split {
		f(g.rect)
		return
	}
	for _, c := range g.children {
		c.walk(f)
	}
}
