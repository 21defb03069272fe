package rectpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectOverlaps(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, r.Overlaps(NewRect(5, 5, 15, 15)))
	assert.True(t, r.Overlaps(NewRect(2, 2, 3, 3)))
	assert.True(t, NewRect(2, 2, 3, 3).Overlaps(r))
	// Shared edges and corners are not overlaps.
	assert.False(t, r.Overlaps(NewRect(10, 0, 20, 10)))
	assert.False(t, r.Overlaps(NewRect(0, 10, 10, 20)))
	assert.False(t, r.Overlaps(NewRect(10, 10, 20, 20)))
	// Degenerate rects overlap nothing.
	assert.False(t, r.Overlaps(NewRect(0, 0, 0, 0)))
	assert.False(t, r.Overlaps(NewRect(2, 2, 8, 2)))
}

func TestRectFits(t *testing.T) {
	r := NewRect(4, 4, 14, 9)
	assert.Equal(t, Point{X: 10, Y: 5}, r.Size())
	assert.True(t, r.Fits(10, 5))
	assert.True(t, r.Fits(1, 1))
	assert.False(t, r.Fits(5, 10))
	assert.False(t, r.Fits(11, 1))
}

func TestRectSplit(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	splits, ok := r.Split(NewRect(2, 3, 5, 7))
	require.True(t, ok)
	assert.Equal(t, []Rect{
		NewRect(0, 0, 10, 3),
		NewRect(0, 3, 2, 7),
		NewRect(5, 3, 10, 7),
		NewRect(0, 7, 10, 10),
	}, splits)

	splits, ok = r.Split(NewRect(0, 0, 4, 4))
	require.True(t, ok)
	assert.Equal(t, []Rect{
		NewRect(4, 0, 10, 4),
		NewRect(0, 4, 10, 10),
	}, splits)

	// Removed rect is clipped.
	splits, ok = r.Split(NewRect(5, -5, 15, 5))
	require.True(t, ok)
	assert.Equal(t, []Rect{
		NewRect(0, 0, 5, 5),
		NewRect(0, 5, 10, 10),
	}, splits)

	splits, ok = r.Split(NewRect(-1, -1, 11, 11))
	require.True(t, ok)
	assert.Empty(t, splits)

	_, ok = r.Split(NewRect(10, 0, 20, 10))
	assert.False(t, ok)
}

// checkSplit checks that the leaves of g cover exactly r minus removed,
// without overlapping each other.
func checkSplit(t *testing.T, g *Region, r Rect, removed []Rect) {
	t.Helper()
	leaves := g.Leaves()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px := NewRect(x, y, x+1, y+1)
			var inRemoved bool
			for _, rr := range removed {
				if rr.Overlaps(px) {
					inRemoved = true
				}
			}
			var count int
			for _, l := range leaves {
				if l.Overlaps(px) {
					count++
				}
			}
			if inRemoved && count != 0 {
				t.Fatalf("pixel (%d,%d) is used but is in %d free rects", x, y, count)
			}
			if !inRemoved && count != 1 {
				t.Fatalf("pixel (%d,%d) is free but is in %d free rects", x, y, count)
			}
		}
	}
}

func TestRegionSplit(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x5678))
	for i := 0; i < 100; i++ {
		r := NewRect(rnd.Intn(5), rnd.Intn(5), 10+rnd.Intn(20), 10+rnd.Intn(20))
		x1 := r.Min.X + rnd.Intn(r.Dx())
		y1 := r.Min.Y + rnd.Intn(r.Dy())
		x2 := x1 + 1 + rnd.Intn(r.Max.X-x1)
		y2 := y1 + 1 + rnd.Intn(r.Max.Y-y1)
		rr := NewRect(x1, y1, x2, y2)

		g := NewRegion(r)
		g.RemoveRect(rr)
		checkSplit(t, g, r, []Rect{rr})
		assert.Equal(t, r.Area()-rr.Area(), g.FreeArea())
	}
}

func TestRegionPlacements(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x9abc))
	r := NewRect(0, 0, 64, 48)
	g := NewRegion(r)
	var removed []Rect
	for i := 0; i < 200; i++ {
		w := 1 + rnd.Intn(12)
		h := 1 + rnd.Intn(12)
		fit, ok := g.FindFit(w, h)
		if !ok {
			continue
		}
		require.Equal(t, Point{X: w, Y: h}, fit.Size())
		require.True(t, r.Contains(fit))
		for _, o := range removed {
			require.False(t, o.Overlaps(fit), "%v overlaps %v", fit, o)
		}
		before := g.FreeArea()
		g.RemoveRect(fit)
		removed = append(removed, fit)
		require.Equal(t, before-fit.Area(), g.FreeArea())
	}
	checkSplit(t, g, r, removed)
}

func TestRegionRotatedFit(t *testing.T) {
	g := NewRegion(NewRect(0, 0, 250, 200))
	g.RemoveRect(NewRect(0, 0, 200, 200))
	assert.Equal(t, []Rect{NewRect(200, 0, 250, 200)}, g.Leaves())

	_, ok := g.FindFit(200, 50)
	assert.False(t, ok)
	fit, ok := g.FindFit(50, 200)
	require.True(t, ok)
	assert.Equal(t, NewRect(200, 0, 250, 200), fit)
}

func TestRegionFirstFit(t *testing.T) {
	g := NewRegion(NewRect(0, 0, 10, 10))
	g.RemoveRect(NewRect(0, 0, 6, 4))
	// Children are the strip right of the removed rect, then the strip below.
	assert.Equal(t, []Rect{NewRect(6, 0, 10, 4), NewRect(0, 4, 10, 10)}, g.Leaves())

	fit, ok := g.FindFit(2, 2)
	require.True(t, ok)
	assert.Equal(t, NewRect(6, 0, 8, 2), fit)

	fit, ok = g.FindFit(5, 2)
	require.True(t, ok)
	assert.Equal(t, NewRect(0, 4, 5, 6), fit)

	_, ok = g.FindFit(11, 1)
	assert.False(t, ok)
}

func TestRegionEmpty(t *testing.T) {
	g := NewRegion(NewRect(0, 0, 4, 2))
	assert.False(t, g.IsEmpty())

	// Rects outside the region leave it alone.
	g.RemoveRect(NewRect(4, 0, 8, 2))
	assert.False(t, g.IsEmpty())
	assert.Equal(t, []Rect{NewRect(0, 0, 4, 2)}, g.Leaves())

	g.RemoveRect(NewRect(0, 0, 2, 2))
	assert.False(t, g.IsEmpty())
	assert.Equal(t, 4, g.FreeArea())

	g.RemoveRect(NewRect(2, 0, 4, 2))
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.FreeArea())
	assert.Empty(t, g.Leaves())
	_, ok := g.FindFit(1, 1)
	assert.False(t, ok)

	g = NewRegion(NewRect(0, 0, 4, 4))
	g.RemoveRect(NewRect(0, 0, 4, 4))
	assert.True(t, g.IsEmpty())
}
