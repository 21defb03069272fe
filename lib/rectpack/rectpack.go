// Package rectpack packs rectangles into a power-of-two sized rectangle.
//
// Free space is tracked by a Region tree. Rectangles are placed largest first,
// each in the first free rectangle it fits in, rotating it by 90 degrees if it
// does not fit otherwise. When a rectangle cannot be placed, the canvas is
// doubled in size and packing starts over.
package rectpack

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultMaxSize is the default limit on the width and height of the canvas.
const DefaultMaxSize = 16 * 1024

var (
	// ErrSizingExhausted is returned when the rectangles do not fit in the
	// largest allowed canvas.
	ErrSizingExhausted = errors.New("could not pack rectangles within size limit")

	// ErrInvalidEntry is returned for an entry with a negative size or area.
	ErrInvalidEntry = errors.New("invalid entry")
)

// A SizingError is returned when the canvas would have to grow past the size
// limit.
type SizingError struct {
	Size  Point // Canvas size that was needed.
	Limit int   // Maximum allowed width or height.
}

func (e *SizingError) Error() string {
	return fmt.Sprintf("%v: need %dx%d, limit is %d",
		ErrSizingExhausted, e.Size.X, e.Size.Y, e.Limit)
}

func (e *SizingError) Unwrap() error {
	return ErrSizingExhausted
}

// An EntryError is returned when an input entry is invalid.
type EntryError struct {
	Index int
	Entry Entry
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%v %d: size %dx%d, area %d",
		ErrInvalidEntry, e.Index, e.Entry.Size.X, e.Entry.Size.Y, e.Entry.Area)
}

func (e *EntryError) Unwrap() error {
	return ErrInvalidEntry
}

// An Entry is a rectangle to pack.
type Entry struct {
	// Requested size, normally with the long side in X. The packer will try
	// this orientation first.
	Size Point
	// Weight used for ordering entries and for estimating the canvas size.
	// Normally Size.X * Size.Y.
	Area int
}

// NewEntry returns an entry for a rectangle with the given width and height,
// with the long side first.
func NewEntry(w, h int) Entry {
	if w < h {
		w, h = h, w
	}
	return Entry{Size: Point{X: w, Y: h}, Area: w * h}
}

func (e Entry) valid() bool {
	return e.Size.X >= 0 && e.Size.Y >= 0 && e.Area >= 0
}

// A Placement is the location assigned to an entry.
type Placement struct {
	Rect Rect
	// Rotated is true if the rectangle's size is transposed relative to the
	// entry's requested size.
	Rotated bool
}

// A Result is a complete packing.
type Result struct {
	// Size of the canvas. Both dimensions are powers of two.
	Size Point
	// Placement of each entry, in input order.
	Placements []Placement
}

// Fill returns the fraction of the canvas covered by the given area.
func (r *Result) Fill(area int) float64 {
	return float64(area) / float64(r.Size.X*r.Size.Y)
}

// Options controls packing. The zero value is usable.
type Options struct {
	// MaxSize is the maximum width and height of the canvas. Zero means
	// DefaultMaxSize.
	MaxSize int
	// Log receives a debug record for each packing attempt, if not nil.
	Log logrus.FieldLogger
}

func (o *Options) maxSize() int {
	if o == nil || o.MaxSize <= 0 {
		return DefaultMaxSize
	}
	return o.MaxSize
}

func (o *Options) log() logrus.FieldLogger {
	if o == nil {
		return nil
	}
	return o.Log
}

// A sizer grows the canvas, one dimension at a time.
type sizer struct {
	size  Point
	limit int
}

func (s *sizer) err() error {
	return &SizingError{Size: s.size, Limit: s.limit}
}

// growX doubles the width.
func (s *sizer) growX() error {
	s.size.X *= 2
	if s.size.X > s.limit {
		return s.err()
	}
	return nil
}

// grow doubles the smaller dimension, preferring the width.
func (s *sizer) grow() error {
	if s.size.X <= s.size.Y {
		return s.growX()
	}
	s.size.Y *= 2
	if s.size.Y > s.limit {
		return s.err()
	}
	return nil
}

// initialSize returns a first guess for the canvas size. It is wide enough for
// the longest side of any entry and has at least the total area.
func initialSize(entries []inentry, limit int) (Point, error) {
	var maxw, area int
	for _, e := range entries {
		if w := e.entry.Size.X; w > maxw {
			maxw = w
		}
		if h := e.entry.Size.Y; h > maxw {
			maxw = h
		}
		area += e.entry.Area
	}
	s := sizer{size: Point{X: 1, Y: 1}, limit: limit}
	for s.size.X < maxw {
		if err := s.growX(); err != nil {
			return Point{}, err
		}
	}
	for s.size.X*s.size.Y < area {
		if err := s.grow(); err != nil {
			return Point{}, err
		}
	}
	return s.size, nil
}

// packInto tries to pack all entries into a canvas of the given size. Returns
// the index into entries of the first entry which could not be placed, or -1
// if all entries were placed.
func packInto(size Point, entries []inentry, pos []Placement) int {
	region := NewRegion(Rect{Max: size})
	for i, e := range entries {
		sz := e.entry.Size
		var r Rect
		if sz.X != 0 || sz.Y != 0 {
			var ok bool
			r, ok = region.FindFit(sz.X, sz.Y)
			if !ok {
				r, ok = region.FindFit(sz.Y, sz.X)
				if !ok {
					return i
				}
			}
			region.RemoveRect(r)
		}
		pos[e.index] = Placement{
			Rect:    r,
			Rotated: r.Size() != sz,
		}
	}
	return -1
}

// Pack packs the entries into the smallest canvas it can find, doubling the
// canvas size until all entries fit. Entries with size zero are placed at the
// origin. Returns an error if any entry is invalid or if the canvas would need
// to be larger than the size limit.
func Pack(entries []Entry, opts *Options) (Result, error) {
	for i, e := range entries {
		if !e.valid() {
			return Result{}, &EntryError{Index: i, Entry: e}
		}
	}
	sorted := sortEntries(entries)
	limit := opts.maxSize()
	size, err := initialSize(sorted, limit)
	if err != nil {
		return Result{}, err
	}
	log := opts.log()
	pos := make([]Placement, len(entries))
	s := sizer{size: size, limit: limit}
	for attempt := 1; ; attempt++ {
		failed := packInto(s.size, sorted, pos)
		if failed == -1 {
			if log != nil {
				log.WithFields(logrus.Fields{
					"attempt": attempt,
					"width":   s.size.X,
					"height":  s.size.Y,
				}).Debug("packed")
			}
			return Result{Size: s.size, Placements: pos}, nil
		}
		if log != nil {
			e := sorted[failed]
			log.WithFields(logrus.Fields{
				"attempt": attempt,
				"width":   s.size.X,
				"height":  s.size.Y,
				"placed":  failed,
				"entry":   e.index,
			}).Debug("entry does not fit, growing canvas")
		}
		for i := range pos {
			pos[i] = Placement{}
		}
		if err := s.grow(); err != nil {
			return Result{}, err
		}
	}
}
