// Package color derives color-harmony variants of an image by rotating the
// hue of every pixel while holding saturation and value.
package color

import (
	"math"

	"github.com/gogpu/gg-compose/internal/enum"
	"github.com/gogpu/gg-compose/internal/image"
	"github.com/lucasb-eyer/go-colorful"
)

// Scheme is a color-harmony rule: a fixed set of hue offsets in degrees.
type Scheme uint8

const (
	Complementary Scheme = iota
	SplitComplementary
	Analogous
	Triadic
	Tetradic
	Square
	Compound
)

var schemeNames = []string{
	"COMPLEMENTARY", "SPLIT_COMPLEMENTARY", "ANALOGOUS", "TRIADIC",
	"TETRADIC", "SQUARE", "COMPOUND",
}

var schemeOffsets = [][]float64{
	Complementary:      {180},
	SplitComplementary: {150, 210},
	Analogous:          {30, 330},
	Triadic:            {120, 240},
	Tetradic:           {60, 180, 240},
	Square:             {90, 180, 270},
	Compound:           {30, 180, 210},
}

// ParseScheme returns the scheme with the given name.
func ParseScheme(name string) (Scheme, error) {
	return enum.Parse[Scheme]("color scheme", schemeNames, name)
}

// String returns the canonical name of the scheme.
func (s Scheme) String() string { return enum.Name(schemeNames, s) }

// IsValid reports whether s is a known scheme.
func (s Scheme) IsValid() bool { return enum.Valid(schemeNames, s) }

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	v, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Offsets returns the scheme's hue offsets in degrees. Unknown schemes have none.
func (s Scheme) Offsets() []float64 {
	if !s.IsValid() {
		return nil
	}
	return append([]float64(nil), schemeOffsets[s]...)
}

// RotateHue returns a copy of src with every pixel's hue turned by degrees
// in HSV. Alpha and Gray8 buffers are copied unchanged.
func RotateHue(src *image.Buffer, degrees float64) *image.Buffer {
	dst := src.Clone()
	if src.Format() == image.FormatGray8 {
		return dst
	}

	bpp := src.Format().BytesPerPixel()
	d := dst.Data()
	cache := make(map[[3]byte][3]byte)
	for i := 0; i < len(d); i += bpp {
		key := [3]byte{d[i], d[i+1], d[i+2]}
		out, ok := cache[key]
		if !ok {
			out = rotate(key, degrees)
			cache[key] = out
		}
		d[i], d[i+1], d[i+2] = out[0], out[1], out[2]
	}
	return dst
}

func rotate(px [3]byte, degrees float64) [3]byte {
	c := colorful.Color{R: float64(px[0]) / 255, G: float64(px[1]) / 255, B: float64(px[2]) / 255}
	h, s, v := c.Hsv()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	r := colorful.Hsv(h, s, v).Clamped()
	return [3]byte{image.ClampByte(r.R * 255), image.ClampByte(r.G * 255), image.ClampByte(r.B * 255)}
}

// Harmonize returns src followed by one hue-rotated copy per scheme offset,
// each offset shifted by angle degrees. The result holds at most five images.
func Harmonize(src *image.Buffer, scheme Scheme, angle float64) ([]*image.Buffer, error) {
	if !scheme.IsValid() {
		return nil, image.ErrUnknownMode
	}
	offsets := schemeOffsets[scheme]
	out := make([]*image.Buffer, 0, len(offsets)+1)
	out = append(out, src.Clone())
	for _, off := range offsets {
		out = append(out, RotateHue(src, off+angle))
	}
	return out, nil
}
