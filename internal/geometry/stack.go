package geometry

import (
	"github.com/gogpu/gg-compose/internal/enum"
	"github.com/gogpu/gg-compose/internal/image"
)

// Orientation selects how Stack lays out its cells.
type Orientation uint8

const (
	// Horizontal places every image in one row.
	Horizontal Orientation = iota

	// Vertical places every image in one column.
	Vertical

	// Grid fills rows of a fixed number of columns.
	Grid
)

var orientationNames = []string{"HORIZONTAL", "VERTICAL", "GRID"}

// ParseOrientation returns the orientation with the given name.
func ParseOrientation(name string) (Orientation, error) {
	return enum.Parse[Orientation]("orientation", orientationNames, name)
}

// String returns the canonical name of the orientation.
func (o Orientation) String() string { return enum.Name(orientationNames, o) }

// IsValid reports whether o is a known orientation.
func (o Orientation) IsValid() bool { return enum.Valid(orientationNames, o) }

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Stack arranges images on one RGBA canvas. Every cell is as large as the
// largest image; smaller images are centered in their cell and the rest of
// the canvas is filled with matte. Grid uses stride columns (at least 1).
// Nil images leave their cell empty.
func Stack(images []*image.Buffer, orient Orientation, stride int, matte image.Color) (*image.Buffer, error) {
	if len(images) == 0 {
		return nil, image.ErrInvalidDimensions
	}

	cw, ch := 0, 0
	for _, img := range images {
		if img == nil {
			continue
		}
		cw = max(cw, img.Width())
		ch = max(ch, img.Height())
	}
	if cw == 0 || ch == 0 {
		return nil, image.ErrInvalidDimensions
	}

	n := len(images)
	var cols int
	switch orient {
	case Horizontal:
		cols = n
	case Vertical:
		cols = 1
	case Grid:
		cols = min(max(stride, 1), n)
	default:
		return nil, image.ErrUnknownMode
	}
	rows := (n + cols - 1) / cols

	dst, err := image.Solid(cw*cols, ch*rows, image.FormatRGBA8, matte)
	if err != nil {
		return nil, err
	}
	for i, img := range images {
		if img == nil {
			continue
		}
		cell, err := image.CropCenter(image.ToRGBA(img), cw, ch, matte)
		if err != nil {
			return nil, err
		}
		blit(dst, cell, (i%cols)*cw, (i/cols)*ch)
	}
	return dst, nil
}

// blit copies src into dst with its top-left corner at (x, y). Both are
// RGBA8 and src must fit inside dst.
func blit(dst, src *image.Buffer, x, y int) {
	n := src.Width() * 4
	for row := range src.Height() {
		d := dst.Row(y + row)
		copy(d[x*4:x*4+n], src.Row(row))
	}
}
