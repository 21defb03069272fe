// Package atlas builds sprite sheets: it packs sprites into a single image and
// records where each sprite went.
package atlas

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/depp/mkspritesheet/lib/rectpack"
	"github.com/depp/mkspritesheet/lib/texture"
)

// An Atlas is a packed sprite sheet.
type Atlas struct {
	Image    *image.NRGBA
	Manifest Manifest
	// Placement of each sprite, in the order the sprites were given.
	Packing rectpack.Result
	area    int
}

// Size returns the size of the atlas image.
func (a *Atlas) Size() image.Point {
	return a.Image.Rect.Size()
}

// Fill returns the fraction of the atlas covered by sprites.
func (a *Atlas) Fill() float64 {
	return a.Packing.Fill(a.area)
}

// WritePNG writes the atlas image to a PNG file.
func (a *Atlas) WritePNG(filename string) error {
	return texture.WritePNG(a.Image, filename)
}

func toImageRect(r rectpack.Rect) image.Rectangle {
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// Build packs the sprites into an atlas. Sprites must have distinct names.
func Build(sprites []*Sprite, opts *rectpack.Options) (*Atlas, error) {
	if len(sprites) == 0 {
		return nil, errors.New("no sprites")
	}
	m := make(Manifest, len(sprites))
	entries := make([]rectpack.Entry, len(sprites))
	var area int
	for i, s := range sprites {
		key := ManifestKey(s.Name)
		if _, ok := m[key]; ok {
			return nil, fmt.Errorf("duplicate sprite name: %q", s.Name)
		}
		m[key] = Record{}
		entries[i] = rectpack.NewEntry(s.Box.Dx(), s.Box.Dy())
		area += entries[i].Area
	}
	res, err := rectpack.Pack(entries, opts)
	if err != nil {
		return nil, err
	}
	canvas := image.NewNRGBA(image.Rectangle{
		Max: image.Point{X: res.Size.X, Y: res.Size.Y},
	})
	for i, s := range sprites {
		r := toImageRect(res.Placements[i].Rect)
		// The packer places the long side along X, so whether the sprite is
		// transposed depends on the image, not on the entry.
		src := s.Image
		transposed := r.Size() != s.Box.Size()
		if transposed {
			src = texture.Transpose(src)
		}
		if r.Size() != src.Rect.Size() {
			return nil, fmt.Errorf("sprite %q: image size %v does not match packed size %v",
				s.Name, src.Rect.Size(), r.Size())
		}
		if !r.Empty() {
			draw.Draw(canvas, r, src, src.Rect.Min, draw.Src)
		}
		m[ManifestKey(s.Name)] = makeRecord(s, r, canvas.Rect.Size(), transposed)
	}
	return &Atlas{
		Image:    canvas,
		Manifest: m,
		Packing:  res,
		area:     area,
	}, nil
}
