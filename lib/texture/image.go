// Package texture reads, trims, and writes sprite images.
package texture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ReadImage reads an image file. PNG, JPEG, GIF, BMP, TIFF, and WebP are
// supported.
func ReadImage(filename string) (image.Image, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	im, _, err := image.Decode(fp)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", filename, err)
	}
	return im, nil
}

// WritePNG writes an image to a PNG file.
func WritePNG(im image.Image, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := png.Encode(fp, im); err != nil {
		return err
	}
	return fp.Close()
}

// ToNRGBA converts an image to NRGBA with its origin at (0, 0).
func ToNRGBA(im image.Image) *image.NRGBA {
	b := im.Bounds()
	if ri, ok := im.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return ri
	}
	ri := image.NewNRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(ri, ri.Rect, im, b.Min, draw.Src)
	return ri
}

// OpaqueBounds returns the smallest rectangle containing all pixels with
// nonzero alpha, relative to the image origin. Returns the zero rectangle if
// every pixel is transparent.
func OpaqueBounds(im *image.NRGBA) image.Rectangle {
	ysz := im.Rect.Dy()
	xsz := im.Rect.Dx()
	xmin := xsz
	xmax := 0
	ymin := ysz
	ymax := 0
	for y := 0; y < ysz; y++ {
		off := y * im.Stride
		row := im.Pix[off : off+xsz*4 : off+xsz*4]
		x0 := 0
		x1 := xsz
		for x0 < xsz && row[x0*4+3] == 0 {
			x0++
		}
		for x1 > 0 && row[x1*4-1] == 0 {
			x1--
		}
		if x0 < x1 {
			if x0 < xmin {
				xmin = x0
			}
			if xmax < x1 {
				xmax = x1
			}
			if y < ymin {
				ymin = y
			}
			if ymax < y+1 {
				ymax = y + 1
			}
		}
	}
	if xmin >= xmax || ymin >= ymax {
		return image.Rectangle{}
	}
	return image.Rectangle{
		Min: image.Point{X: xmin, Y: ymin},
		Max: image.Point{X: xmax, Y: ymax},
	}
}

// Crop returns the part of the image inside the given rectangle, relative to
// the image origin, as a new image with its origin at (0, 0).
func Crop(im *image.NRGBA, r image.Rectangle) *image.NRGBA {
	return imaging.Crop(im, r.Add(im.Rect.Min))
}

// Transpose returns the image flipped across its main diagonal, so pixel
// (x, y) moves to (y, x).
func Transpose(im image.Image) *image.NRGBA {
	return imaging.Transpose(im)
}
