package channel

import (
	"github.com/gogpu/gg-compose/internal/enum"
	"github.com/gogpu/gg-compose/internal/image"
)

// Selector names the source of one output channel in Swizzle.
type Selector uint8

// Selectors read the named plane of operand A or B, or the per-channel
// constant.
const (
	RedA Selector = iota
	GreenA
	BlueA
	AlphaA
	RedB
	GreenB
	BlueB
	AlphaB
	Constant
)

var selectorNames = []string{
	"RED_A", "GREEN_A", "BLUE_A", "ALPHA_A",
	"RED_B", "GREEN_B", "BLUE_B", "ALPHA_B",
	"CONSTANT",
}

// ParseSelector returns the selector with the given name.
func ParseSelector(name string) (Selector, error) {
	return enum.Parse[Selector]("swizzle selector", selectorNames, name)
}

// String returns the canonical name of the selector.
func (s Selector) String() string { return enum.Name(selectorNames, s) }

// IsValid reports whether s is a known selector.
func (s Selector) IsValid() bool { return enum.Valid(selectorNames, s) }

// MarshalText implements encoding.TextMarshaler.
func (s Selector) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Selector) UnmarshalText(text []byte) error {
	v, err := ParseSelector(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DefaultSwizzle passes A through unchanged.
var DefaultSwizzle = [4]Selector{RedA, GreenA, BlueA, AlphaA}

// Swizzle builds an RGBA buffer on the canvas of a whose channel c comes from
// the plane named by sel[c], or from constants[c] for Constant.
//
// A nil a is replaced by a buffer of minSize×minSize filled with matte; a nil
// b by a matte buffer of a's size. b is center-cropped or padded to a's
// canvas without resampling.
func Swizzle(a, b *image.Buffer, sel [4]Selector, constants image.Color, matte image.Color, minSize int) (*image.Buffer, error) {
	a, err := image.Coerce(a, minSize, minSize, matte)
	if err != nil {
		return nil, err
	}
	w, h := a.Bounds()

	b, err = image.Coerce(b, w, h, matte)
	if err != nil {
		return nil, err
	}
	if !b.SameSize(a) {
		if b, err = image.CropCenter(b, w, h, matte); err != nil {
			return nil, err
		}
	}

	dst, err := image.Solid(w, h, image.FormatRGBA8, constants)
	if err != nil {
		return nil, err
	}

	d, ad, bd := dst.Data(), a.Data(), b.Data()
	for c, s := range sel {
		var src []byte
		switch {
		case s <= AlphaA:
			src = ad
		case s <= AlphaB:
			src = bd
		case s == Constant:
			continue
		default:
			return nil, image.ErrUnknownMode
		}
		plane := int(s) % 4
		for i := 0; i < len(d); i += 4 {
			d[i+c] = src[i+plane]
		}
	}
	return dst, nil
}
