package geometry

import (
	"math"

	"github.com/gogpu/gg-compose/internal/enum"
	"github.com/gogpu/gg-compose/internal/image"
)

// MirrorMode selects which half of the canvas is reflected onto the other.
type MirrorMode uint8

const (
	// MirrorNone leaves the image unchanged.
	MirrorNone MirrorMode = iota

	// MirrorX keeps the part left of the pivot and reflects it to the right.
	MirrorX

	// MirrorFlipX keeps the part right of the pivot and reflects it to the left.
	MirrorFlipX

	// MirrorY keeps the part above the pivot and reflects it downwards.
	MirrorY

	// MirrorFlipY keeps the part below the pivot and reflects it upwards.
	MirrorFlipY

	// MirrorXY applies MirrorX and MirrorY.
	MirrorXY

	// MirrorFlipXY applies MirrorFlipX and MirrorFlipY.
	MirrorFlipXY
)

var mirrorModeNames = []string{"NONE", "X", "FLIP_X", "Y", "FLIP_Y", "XY", "FLIP_XY"}

// ParseMirrorMode returns the mirror mode with the given name.
func ParseMirrorMode(name string) (MirrorMode, error) {
	return enum.Parse[MirrorMode]("mirror mode", mirrorModeNames, name)
}

// String returns the canonical name of the mirror mode.
func (m MirrorMode) String() string { return enum.Name(mirrorModeNames, m) }

// IsValid reports whether m is a known mirror mode.
func (m MirrorMode) IsValid() bool { return enum.Valid(mirrorModeNames, m) }

// MarshalText implements encoding.TextMarshaler.
func (m MirrorMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MirrorMode) UnmarshalText(text []byte) error {
	v, err := ParseMirrorMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// axes returns the horizontal and vertical reflection for m.
// 0 means none, +1 keeps the low side, -1 keeps the high side.
func (m MirrorMode) axes() (x, y int) {
	switch m {
	case MirrorX:
		return 1, 0
	case MirrorFlipX:
		return -1, 0
	case MirrorY:
		return 0, 1
	case MirrorFlipY:
		return 0, -1
	case MirrorXY:
		return 1, 1
	case MirrorFlipXY:
		return -1, -1
	default:
		return 0, 0
	}
}

// reflectIndex folds i into [0, n) by reflecting at the borders.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}

// mirrorLine returns the source index table for one axis of length n.
// pivot is the axis position as a fraction of the canvas.
func mirrorLine(n int, pivot float64, side int) []int {
	p := pivot * float64(n-1)
	idx := make([]int, n)
	for i := range n {
		idx[i] = i
		f := float64(i)
		if (side > 0 && f > p) || (side < 0 && f < p) {
			idx[i] = reflectIndex(int(math.Round(2*p-f)), n)
		}
	}
	return idx
}

// Mirror reflects one side of src onto the other about the axis located at
// pivot (fractions of the canvas along x and y). The result keeps the size
// and format of src.
func Mirror(src *image.Buffer, mode MirrorMode, pivot [2]float64) (*image.Buffer, error) {
	if !mode.IsValid() {
		return nil, image.ErrUnknownMode
	}
	ax, ay := mode.axes()
	if ax == 0 && ay == 0 {
		return src.Clone(), nil
	}

	w, h := src.Bounds()
	xs := mirrorLine(w, pivot[0], ax)
	ys := mirrorLine(h, pivot[1], ay)

	dst, err := image.NewBuffer(w, h, src.Format())
	if err != nil {
		return nil, err
	}
	for y := range h {
		for x := range w {
			copy(dst.Pixel(x, y), src.Pixel(xs[x], ys[y]))
		}
	}
	return dst, nil
}
