package image

import (
	"image"
	"math"

	"github.com/gogpu/gg-compose/internal/enum"
	"golang.org/x/image/draw"
)

// ScaleMode is the post-processing resize policy used to reconcile sizes.
type ScaleMode uint8

const (
	// ScaleNone leaves the buffer untouched.
	ScaleNone ScaleMode = iota

	// ScaleFit stretches the buffer to exactly the target size.
	ScaleFit

	// ScaleCrop center-crops or pads to the target size without resampling.
	ScaleCrop

	// ScaleAspect scales preserving aspect ratio so the target is covered,
	// then center-crops.
	ScaleAspect

	// ScaleAspectShort scales preserving aspect ratio so the buffer fits
	// inside the target, then pads.
	ScaleAspectShort
)

var scaleModeNames = []string{"NONE", "FIT", "CROP", "ASPECT", "ASPECT_SHORT"}

// ParseScaleMode returns the scale mode with the given name.
func ParseScaleMode(name string) (ScaleMode, error) {
	return enum.Parse[ScaleMode]("scale mode", scaleModeNames, name)
}

// String returns the canonical name of the scale mode.
func (m ScaleMode) String() string { return enum.Name(scaleModeNames, m) }

// IsValid reports whether m is a known scale mode.
func (m ScaleMode) IsValid() bool { return enum.Valid(scaleModeNames, m) }

// MarshalText implements encoding.TextMarshaler.
func (m ScaleMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ScaleMode) UnmarshalText(text []byte) error {
	v, err := ParseScaleMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// boxWeight averages the covered area; x/image/draw widens its support when
// shrinking.
func boxWeight(t float64) float64 {
	if t >= -0.5 && t < 0.5 {
		return 1
	}
	return 0
}

var (
	areaKernel     = &draw.Kernel{Support: 0.5, At: boxWeight}
	lanczos4Kernel = &draw.Kernel{Support: 4, At: lanczos4Weight}
)

// scaler returns the x/image/draw scaler for an interpolation kind.
func scaler(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpNearest:
		return draw.NearestNeighbor
	case InterpCubic:
		return draw.CatmullRom
	case InterpArea:
		return areaKernel
	case InterpLanczos4:
		return lanczos4Kernel
	default:
		return draw.BiLinear
	}
}

// Resize resamples src to width×height with the given kernel, keeping its format.
// Resizing to the current size returns a copy.
func Resize(src *Buffer, width, height int, interp Interpolation) (*Buffer, error) {
	if !interp.IsValid() {
		return nil, ErrUnknownMode
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if src.width == width && src.height == height {
		return src.Clone(), nil
	}

	s := ToStd(src)
	dst := newStdLike(src.format, width, height)
	scaler(interp).Scale(dst, dst.Bounds(), s, s.Bounds(), draw.Src, nil)

	out := FromStd(dst)
	if out.format != src.format {
		return Convert(out, src.format.Channels())
	}
	return out, nil
}

// Crop copies the width×height window whose top-left corner is (x, y) in src.
// Parts of the window outside src are filled with fill.
func Crop(src *Buffer, x, y, width, height int, fill Color) (*Buffer, error) {
	dst, err := Solid(width, height, src.format, fill)
	if err != nil {
		return nil, err
	}
	bpp := src.format.BytesPerPixel()

	x0 := max(x, 0)
	x1 := min(x+width, src.width)
	if x0 >= x1 {
		return dst, nil
	}
	for dy := range height {
		sy := y + dy
		if sy < 0 || sy >= src.height {
			continue
		}
		srow := src.Row(sy)
		drow := dst.Row(dy)
		copy(drow[(x0-x)*bpp:(x1-x)*bpp], srow[x0*bpp:x1*bpp])
	}
	return dst, nil
}

// CropCenter center-crops or pads src to width×height.
func CropCenter(src *Buffer, width, height int, fill Color) (*Buffer, error) {
	return Crop(src, (src.width-width)/2, (src.height-height)/2, width, height, fill)
}

// Fit applies mode to bring src to width×height.
func Fit(src *Buffer, width, height int, mode ScaleMode, interp Interpolation, fill Color) (*Buffer, error) {
	switch mode {
	case ScaleNone:
		return src.Clone(), nil
	case ScaleFit:
		return Resize(src, width, height, interp)
	case ScaleCrop:
		return CropCenter(src, width, height, fill)
	case ScaleAspect, ScaleAspectShort:
		sx := float64(width) / float64(src.width)
		sy := float64(height) / float64(src.height)
		k := math.Max(sx, sy)
		if mode == ScaleAspectShort {
			k = math.Min(sx, sy)
		}
		w := max(1, int(math.Round(float64(src.width)*k)))
		h := max(1, int(math.Round(float64(src.height)*k)))
		scaled, err := Resize(src, w, h, interp)
		if err != nil {
			return nil, err
		}
		return CropCenter(scaled, width, height, fill)
	default:
		return nil, ErrUnknownMode
	}
}

// newStdLike allocates a standard library image matching what ToStd
// produces for format.
func newStdLike(format Format, width, height int) draw.Image {
	r := image.Rect(0, 0, width, height)
	if format == FormatGray8 {
		return image.NewGray(r)
	}
	return image.NewNRGBA(r)
}
