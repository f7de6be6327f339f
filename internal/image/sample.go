package image

import (
	"math"

	"github.com/gogpu/gg-compose/internal/enum"
)

// EdgeMode governs sampling outside the source extent.
type EdgeMode uint8

const (
	// EdgeClip returns the fill color for out-of-bounds taps.
	EdgeClip EdgeMode = iota

	// EdgeWrap addresses the source modulo its size (seamless tiling).
	EdgeWrap

	// EdgeMirror reflects out-of-bounds taps at the boundary.
	EdgeMirror
)

var edgeModeNames = []string{"CLIP", "WRAP", "MIRROR"}

// ParseEdgeMode returns the edge mode with the given name.
func ParseEdgeMode(name string) (EdgeMode, error) {
	return enum.Parse[EdgeMode]("edge mode", edgeModeNames, name)
}

// String returns the canonical name of the edge mode.
func (m EdgeMode) String() string { return enum.Name(edgeModeNames, m) }

// IsValid reports whether m is a known edge mode.
func (m EdgeMode) IsValid() bool { return enum.Valid(edgeModeNames, m) }

// MarshalText implements encoding.TextMarshaler.
func (m EdgeMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *EdgeMode) UnmarshalText(text []byte) error {
	v, err := ParseEdgeMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Interpolation selects the resampling kernel.
type Interpolation uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	InterpNearest Interpolation = iota

	// InterpLinear interpolates between 2x2 neighboring pixels.
	InterpLinear

	// InterpCubic uses Catmull-Rom splines over a 4x4 neighborhood.
	InterpCubic

	// InterpArea averages the covered source area when shrinking.
	// Point remaps treat it as InterpLinear.
	InterpArea

	// InterpLanczos4 uses a windowed sinc over an 8x8 neighborhood.
	InterpLanczos4
)

var interpolationNames = []string{"NEAREST", "LINEAR", "CUBIC", "AREA", "LANCZOS4"}

// ParseInterpolation returns the interpolation kind with the given name.
func ParseInterpolation(name string) (Interpolation, error) {
	return enum.Parse[Interpolation]("interpolation", interpolationNames, name)
}

// String returns the canonical name of the interpolation kind.
func (m Interpolation) String() string { return enum.Name(interpolationNames, m) }

// IsValid reports whether m is a known interpolation kind.
func (m Interpolation) IsValid() bool { return enum.Valid(interpolationNames, m) }

// MarshalText implements encoding.TextMarshaler.
func (m Interpolation) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Interpolation) UnmarshalText(text []byte) error {
	v, err := ParseInterpolation(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Sampler reads a source buffer at continuous pixel coordinates.
// Pixel centers sit on integer coordinates: (0, 0) is the center of the
// top-left pixel, so sampling at integer positions reproduces the source
// exactly for every kernel.
type Sampler struct {
	src    *Buffer
	interp Interpolation
	edge   EdgeMode
	bpp    int
	fill   [4]float64
}

// NewSampler creates a sampler over src. fill is used for EdgeClip taps and is
// encoded in src's format (luminance for Gray8).
func NewSampler(src *Buffer, interp Interpolation, edge EdgeMode, fill Color) *Sampler {
	s := &Sampler{
		src:    src,
		interp: interp,
		edge:   edge,
		bpp:    src.format.BytesPerPixel(),
	}
	var px [4]byte
	encode(px[:s.bpp], src.format, fill)
	for c := range s.bpp {
		s.fill[c] = float64(px[c])
	}
	return s
}

// resolve maps a tap index onto the source extent according to the edge mode.
// Returns false when the tap falls outside and must use the fill color.
func resolve(i, n int, edge EdgeMode) (int, bool) {
	switch edge {
	case EdgeWrap:
		i %= n
		if i < 0 {
			i += n
		}
		return i, true
	case EdgeMirror:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i, true
	default:
		return i, i >= 0 && i < n
	}
}

// accumulate adds weight*pixel(ix, iy) to acc.
func (s *Sampler) accumulate(ix, iy int, weight float64, acc *[4]float64) {
	x, okx := resolve(ix, s.src.width, s.edge)
	y, oky := resolve(iy, s.src.height, s.edge)
	if !okx || !oky {
		for c := range s.bpp {
			acc[c] += weight * s.fill[c]
		}
		return
	}
	off := (y*s.src.width + x) * s.bpp
	p := s.src.data[off : off+s.bpp]
	for c := range s.bpp {
		acc[c] += weight * float64(p[c])
	}
}

// Sample evaluates the kernel at (x, y) and writes the channel values into out.
func (s *Sampler) Sample(x, y float64, out *[4]float64) {
	*out = [4]float64{}

	switch s.interp {
	case InterpNearest:
		s.accumulate(int(math.Floor(x+0.5)), int(math.Floor(y+0.5)), 1, out)

	case InterpCubic:
		s.separable(x, y, 1, 2, cubicWeight, out)

	case InterpLanczos4:
		s.separable(x, y, 3, 4, lanczos4Weight, out)

	default: // InterpLinear, InterpArea
		s.separable(x, y, 0, 1, linearWeight, out)
	}
}

// separable applies a separable kernel with taps x0-before .. x0+after.
// Weights are normalised so the kernel reproduces constant images exactly.
func (s *Sampler) separable(x, y float64, before, after int, weight func(float64) float64, out *[4]float64) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	var wx, wy [8]float64
	var sumX, sumY float64
	n := before + after + 1
	for k := range n {
		wx[k] = weight(tx - float64(k-before))
		wy[k] = weight(ty - float64(k-before))
		sumX += wx[k]
		sumY += wy[k]
	}
	if sumX == 0 || sumY == 0 {
		return
	}

	for j := range n {
		if wy[j] == 0 {
			continue
		}
		for i := range n {
			if wx[i] == 0 {
				continue
			}
			s.accumulate(x0+i-before, y0+j-before, (wx[i]/sumX)*(wy[j]/sumY), out)
		}
	}
}

// SampleInto samples (x, y) and stores the rounded result in the pixel slice dst.
func (s *Sampler) SampleInto(x, y float64, dst []byte) {
	var acc [4]float64
	s.Sample(x, y, &acc)
	for c := range s.bpp {
		dst[c] = ClampByte(acc[c])
	}
}

// snapEpsilon absorbs floating-point noise so that coordinates produced by
// quarter turns or solved homographies land exactly on pixel centers.
const snapEpsilon = 1e-9

func snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < snapEpsilon {
		return r
	}
	return v
}

// MapFunc maps a destination pixel to a source coordinate.
// Returning ok=false writes the fill color for that pixel.
type MapFunc func(x, y float64) (sx, sy float64, ok bool)

// Remap builds a width×height buffer in src's format whose pixel (x, y)
// samples src at fn(x, y).
func Remap(src *Buffer, width, height int, interp Interpolation, edge EdgeMode, fill Color, fn MapFunc) (*Buffer, error) {
	if !interp.IsValid() || !edge.IsValid() {
		return nil, ErrUnknownMode
	}
	dst, err := NewBuffer(width, height, src.format)
	if err != nil {
		return nil, err
	}
	s := NewSampler(src, interp, edge, fill)
	bpp := s.bpp
	var fillPx [4]byte
	encode(fillPx[:bpp], src.format, fill)

	for y := range height {
		row := dst.Row(y)
		for x := range width {
			px := row[x*bpp : x*bpp+bpp]
			sx, sy, ok := fn(float64(x), float64(y))
			if !ok {
				copy(px, fillPx[:bpp])
				continue
			}
			s.SampleInto(snap(sx), snap(sy), px)
		}
	}
	return dst, nil
}

// linearWeight is the triangle (tent) kernel.
func linearWeight(t float64) float64 {
	t = math.Abs(t)
	if t < 1 {
		return 1 - t
	}
	return 0
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
func cubicWeight(t float64) float64 {
	// Catmull-Rom spline (Mitchell-Netravali with B=0, C=0.5):
	// |t| < 1: (1.5|t|³ - 2.5|t|² + 1)
	// 1 ≤ |t| < 2: (-0.5|t|³ + 2.5|t|² - 4|t| + 2)
	// |t| ≥ 2: 0
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}

// lanczos4Weight is sinc(t)·sinc(t/4) on |t| < 4.
func lanczos4Weight(t float64) float64 {
	if t == 0 {
		return 1
	}
	absT := math.Abs(t)
	if absT >= 4 {
		return 0
	}
	if absT == math.Trunc(absT) {
		return 0
	}
	pt := math.Pi * t
	return 4 * math.Sin(pt) * math.Sin(pt/4) / (pt * pt)
}
