package atlas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"os"

	"golang.org/x/text/unicode/norm"
)

// A Record describes where a sprite is in the atlas.
type Record struct {
	// Size is the size of the original image, before trimming.
	Size [2]int `json:"size"`
	// XY is the trimmed box within the original image, as x1, y1, x2, y2.
	XY [4]int `json:"xy"`
	// ST is the location of the sprite in the atlas, as texture coordinates
	// s1, t1, s2, t2 from 0 to 1.
	ST [4]float64 `json:"st"`
	// Transposed is true if the sprite is stored in the atlas with X and Y
	// swapped.
	Transposed bool `json:"transposed"`
}

// A Manifest maps sprite names to their records.
type Manifest map[string]Record

// ManifestKey returns the manifest key for a sprite name. Names are
// normalized to NFC, so the same file name spelled with combining characters
// maps to the same key.
func ManifestKey(name string) string {
	return norm.NFC.String(name)
}

func makeRecord(s *Sprite, r image.Rectangle, size image.Point, transposed bool) Record {
	w := float64(size.X)
	h := float64(size.Y)
	return Record{
		Size: [2]int{s.OriginalSize.X, s.OriginalSize.Y},
		XY:   [4]int{s.Box.Min.X, s.Box.Min.Y, s.Box.Max.X, s.Box.Max.Y},
		ST: [4]float64{
			float64(r.Min.X) / w,
			float64(r.Min.Y) / h,
			float64(r.Max.X) / w,
			float64(r.Max.Y) / h,
		},
		Transposed: transposed,
	}
}

// Marshal returns the manifest as JSON, with keys in sorted order.
func (m Manifest) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "\t")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteFile writes the manifest to a JSON file.
func (m Manifest) WriteFile(filename string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0666)
}

// ParseManifest parses a JSON manifest.
func ParseManifest(data []byte) (Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadManifest reads a JSON manifest file.
func ReadManifest(filename string) (Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse manifest %q: %w", filename, err)
	}
	return m, nil
}
