package compose

import (
	"math"

	"github.com/gogpu/gg-compose/internal/broadcast"
	"github.com/gogpu/gg-compose/internal/enum"
	"github.com/gogpu/gg-compose/internal/image"
	"github.com/gogpu/gg-compose/internal/shape"
)

// CropMode selects how Crop chooses its window.
type CropMode uint8

const (
	// CropCenter center-crops or pads to WH.
	CropCenter CropMode = iota

	// CropXY cuts a WH window whose top-left corner is XY.
	CropXY

	// CropFree keeps the quadrilateral Corners and cuts to its bounding box.
	CropFree
)

var cropModeNames = []string{"CENTER", "XY", "FREE"}

// ParseCropMode parses CENTER, XY or FREE.
func ParseCropMode(name string) (CropMode, error) {
	return configErr(enum.Parse[CropMode]("crop mode", cropModeNames, name))
}

// String returns the canonical name of the crop mode.
func (m CropMode) String() string { return enum.Name(cropModeNames, m) }

// IsValid reports whether m is a known crop mode.
func (m CropMode) IsValid() bool { return enum.Valid(cropModeNames, m) }

// MarshalText implements encoding.TextMarshaler.
func (m CropMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *CropMode) UnmarshalText(text []byte) error {
	v, err := ParseCropMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// CropParams are the broadcast parameters of Crop.
type CropParams struct {
	Images  []*Buffer  // nil: a WH canvas filled with Fill
	Mode    []CropMode // CENTER
	XY      []Vec2     // (0, 0); components below 1 are canvas fractions, others pixels
	WH      []Size     // engine minimum size
	Corners []Quad     // IdentityQuad, canvas fractions
	Fill    []Color    // opaque black, for uncovered pixels
}

// Crop extracts a region of every item.
func (e *Engine) Crop(p CropParams) ([]Output, error) {
	ms := e.opts.minSize
	images := broadcast.Default(p.Images, nil)
	mode := broadcast.Default(p.Mode, CropCenter)
	xy := broadcast.Default(p.XY, Vec2{})
	wh := broadcast.Default(p.WH, Size{ms, ms})
	corners := broadcast.Default(p.Corners, IdentityQuad)
	fill := broadcast.Default(p.Fill, DefaultMatte)
	n := broadcast.Length(len(images), len(mode), len(xy), len(wh), len(corners), len(fill))

	return run(e, "crop", n, func(i int) (Output, error) {
		f := broadcast.Pick(fill, i)
		size := broadcast.Pick(wh, i)
		w, h := max(size[0], 1), max(size[1], 1)

		img := broadcast.Pick(images, i)
		if img == nil {
			var err error
			if img, err = e.canvas(size, f); err != nil {
				return Output{}, err
			}
		}
		img = image.ToRGBA(img)

		var (
			out *Buffer
			err error
		)
		switch m := broadcast.Pick(mode, i); m {
		case CropCenter:
			out, err = image.CropCenter(img, w, h, f)
		case CropXY:
			o := broadcast.Pick(xy, i)
			x := cropOffset(o[0], img.Width())
			y := cropOffset(o[1], img.Height())
			out, err = image.Crop(img, x, y, w, h, f)
		case CropFree:
			out, err = shape.CropFree(img, broadcast.Pick(corners, i), f)
		default:
			return Output{}, image.ErrUnknownMode
		}
		if err != nil {
			return Output{}, err
		}
		return newOutput(out, f), nil
	})
}

// cropOffset resolves a window offset: magnitudes below 1 are fractions of
// the extent n, anything else is a pixel count.
func cropOffset(v float64, n int) int {
	if math.Abs(v) < 1 {
		return int(math.Round(v * float64(n)))
	}
	return int(math.Round(v))
}
