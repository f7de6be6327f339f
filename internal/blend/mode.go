// Package blend implements the compositor: per-channel blend functions and
// the mask-weighted lerp that applies them.
//
// Channel formulas take the backdrop a (operand A) and the source b
// (operand B) on the 0..255 scale and return f(a, b) on the same scale:
//
//	NORMAL        b
//	ADD           min(a + b, 255)
//	SUBTRACT      max(a - b, 0)
//	MULTIPLY      a·b/255
//	DIVIDE        min(255, 255·a/b); 255 when b = 0 and a > 0, else 0
//	SCREEN        255 - (255-a)(255-b)/255
//	OVERLAY       a ≤ 127.5 ? 2ab/255 : 255 - 2(255-a)(255-b)/255
//	HARD_LIGHT    OVERLAY with a and b exchanged
//	SOFT_LIGHT    W3C soft-light on normalized values
//	DARKEN        min(a, b)
//	LIGHTEN       max(a, b)
//	COLOR_DODGE   a = 0 ? 0 : b = 255 ? 255 : min(255, 255·a/(255-b))
//	COLOR_BURN    a = 255 ? 255 : b = 0 ? 0 : 255 - min(255, 255·(255-a)/b)
//	DIFFERENCE    |a - b|
//	EXCLUSION     a + b - 2ab/255
//	NEGATION      255 - |255 - a - b|
//	LINEAR_LIGHT  clamp(a + 2b - 255)
//	PIN_LIGHT     b < 127.5 ? min(a, 2b) : max(a, 2b - 255)
//	VIVID_LIGHT   b < 127.5 ? COLOR_BURN(a, 2b) : COLOR_DODGE(a, 2b - 255)
//	REFLECT       b = 255 ? 255 : min(255, a²/(255-b))
//	GLOW          REFLECT with a and b exchanged
//
// HUE, SATURATION, COLOR and LUMINOSITY are non-separable and follow
// W3C Compositing and Blending Level 1 with B as the source and A as the
// backdrop.
package blend

import (
	"math"

	"github.com/gogpu/gg-compose/internal/enum"
)

// Mode selects the blend function.
type Mode uint8

// Blend modes.
const (
	Normal Mode = iota
	Add
	Subtract
	Multiply
	Divide
	Screen
	Overlay
	HardLight
	SoftLight
	Darken
	Lighten
	ColorDodge
	ColorBurn
	Difference
	Exclusion
	Negation
	LinearLight
	PinLight
	VividLight
	Reflect
	Glow
	Hue
	Saturation
	Color
	Luminosity
)

var modeNames = []string{
	"NORMAL", "ADD", "SUBTRACT", "MULTIPLY", "DIVIDE", "SCREEN", "OVERLAY",
	"HARD_LIGHT", "SOFT_LIGHT", "DARKEN", "LIGHTEN", "COLOR_DODGE", "COLOR_BURN",
	"DIFFERENCE", "EXCLUSION", "NEGATION", "LINEAR_LIGHT", "PIN_LIGHT",
	"VIVID_LIGHT", "REFLECT", "GLOW", "HUE", "SATURATION", "COLOR", "LUMINOSITY",
}

// ParseMode returns the blend mode with the given name.
func ParseMode(name string) (Mode, error) {
	return enum.Parse[Mode]("blend mode", modeNames, name)
}

// Modes returns every blend mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modeNames))
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// String returns the canonical name of the blend mode.
func (m Mode) String() string { return enum.Name(modeNames, m) }

// IsValid reports whether m is a known blend mode.
func (m Mode) IsValid() bool { return enum.Valid(modeNames, m) }

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// IsSeparable reports whether m operates on each color channel independently.
func (m Mode) IsSeparable() bool {
	return m < Hue
}

func clamp255(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}

func dodge(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	if b >= 255 {
		return 255
	}
	return math.Min(255, 255*a/(255-b))
}

func burn(a, b float64) float64 {
	if a >= 255 {
		return 255
	}
	if b <= 0 {
		return 0
	}
	return 255 - math.Min(255, 255*(255-a)/b)
}

func overlay(a, b float64) float64 {
	if a <= 127.5 {
		return 2 * a * b / 255
	}
	return 255 - 2*(255-a)*(255-b)/255
}

func reflect(a, b float64) float64 {
	if b >= 255 {
		return 255
	}
	return math.Min(255, a*a/(255-b))
}

func softLight(a, b float64) float64 {
	cb, cs := a/255, b/255
	if cs <= 0.5 {
		return 255 * (cb - (1-2*cs)*cb*(1-cb))
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return 255 * (cb + (2*cs-1)*(d-cb))
}

// Channel evaluates a separable mode for one channel. Non-separable modes
// return b.
func (m Mode) Channel(a, b float64) float64 {
	switch m {
	case Add:
		return math.Min(a+b, 255)
	case Subtract:
		return math.Max(a-b, 0)
	case Multiply:
		return a * b / 255
	case Divide:
		if b == 0 {
			if a > 0 {
				return 255
			}
			return 0
		}
		return math.Min(255, 255*a/b)
	case Screen:
		return 255 - (255-a)*(255-b)/255
	case Overlay:
		return overlay(a, b)
	case HardLight:
		return overlay(b, a)
	case SoftLight:
		return softLight(a, b)
	case Darken:
		return math.Min(a, b)
	case Lighten:
		return math.Max(a, b)
	case ColorDodge:
		return dodge(a, b)
	case ColorBurn:
		return burn(a, b)
	case Difference:
		return math.Abs(a - b)
	case Exclusion:
		return a + b - 2*a*b/255
	case Negation:
		return 255 - math.Abs(255-a-b)
	case LinearLight:
		return clamp255(a + 2*b - 255)
	case PinLight:
		if b < 127.5 {
			return math.Min(a, 2*b)
		}
		return math.Max(a, 2*b-255)
	case VividLight:
		if b < 127.5 {
			return burn(a, 2*b)
		}
		return dodge(a, 2*b-255)
	case Reflect:
		return reflect(a, b)
	case Glow:
		return reflect(b, a)
	default:
		return b
	}
}

// RGB evaluates m on a color triple. a is the backdrop and b the source,
// both on the 0..255 scale.
func (m Mode) RGB(a, b [3]float64) [3]float64 {
	if m.IsSeparable() {
		return [3]float64{m.Channel(a[0], b[0]), m.Channel(a[1], b[1]), m.Channel(a[2], b[2])}
	}

	out := nonSeparable(m,
		rgb{a[0] / 255, a[1] / 255, a[2] / 255},
		rgb{b[0] / 255, b[1] / 255, b[2] / 255},
	)
	return [3]float64{out[0] * 255, out[1] * 255, out[2] * 255}
}
