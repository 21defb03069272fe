package atlas

import (
	"image"

	"github.com/depp/mkspritesheet/lib/texture"
)

// A Sprite is an image to pack, trimmed to its opaque pixels.
type Sprite struct {
	// Name is the key for the sprite in the manifest, normally the file name.
	Name string
	// Image contains the opaque part of the original image, with its origin
	// at (0, 0).
	Image *image.NRGBA
	// OriginalSize is the size of the image before trimming.
	OriginalSize image.Point
	// Box is the location of Image within the original image. Zero if the
	// original image is completely transparent.
	Box image.Rectangle
}

// NewSprite creates a sprite from an image, trimming transparent pixels from
// the edges.
func NewSprite(name string, im image.Image) *Sprite {
	ri := texture.ToNRGBA(im)
	box := texture.OpaqueBounds(ri)
	return &Sprite{
		Name:         name,
		Image:        texture.Crop(ri, box),
		OriginalSize: ri.Rect.Size(),
		Box:          box,
	}
}

// LoadSprite reads a sprite from an image file. The sprite is named after the
// file.
func LoadSprite(filename string) (*Sprite, error) {
	im, err := texture.ReadImage(filename)
	if err != nil {
		return nil, err
	}
	return NewSprite(filename, im), nil
}

// Area returns the area of the trimmed sprite.
func (s *Sprite) Area() int {
	return s.Box.Dx() * s.Box.Dy()
}
