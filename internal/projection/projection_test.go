package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg-compose/internal/image"
)

func pattern(w, h int) *image.Buffer {
	buf := image.MustBuffer(w, h, image.FormatRGBA8)
	for y := range h {
		for x := range w {
			_ = buf.Set(x, y, image.Color{R: uint8(x * 11), G: uint8(y * 13), B: uint8(x ^ y), A: 255})
		}
	}
	return buf
}

func TestWarp_IdentityQuad(t *testing.T) {
	src := pattern(16, 12)
	for _, interp := range []image.Interpolation{image.InterpNearest, image.InterpLinear, image.InterpLanczos4} {
		dst, err := Warp(src, IdentityQuad, interp)
		if err != nil {
			t.Fatalf("%v: Warp() error = %v", interp, err)
		}
		if !dst.Equal(src) {
			t.Errorf("%v: identity warp changed pixels", interp)
		}
	}
}

func TestWarp_HalfSize(t *testing.T) {
	src, _ := image.Solid(9, 9, image.FormatRGBA8, image.Color{R: 255, A: 255})
	quad := Quad{{0, 0}, {0.5, 0}, {0.5, 0.5}, {0, 0.5}}

	dst, err := Warp(src, quad, image.InterpNearest)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.At(2, 2); got != (image.Color{R: 255, A: 255}) {
		t.Errorf("inside quad = %+v, want red", got)
	}
	if got := dst.At(8, 8); got != image.Transparent {
		t.Errorf("outside quad = %+v, want transparent", got)
	}
}

func TestWarp_Degenerate(t *testing.T) {
	src := pattern(4, 4)
	collapsed := Quad{{0, 0}, {1, 0}, {1, 0}, {0, 0}}
	if _, err := Warp(src, collapsed, image.InterpLinear); !errors.Is(err, ErrDegenerateQuad) {
		t.Errorf("Warp(collapsed) error = %v, want ErrDegenerateQuad", err)
	}
}

func TestWarp_ReusesHomography(t *testing.T) {
	src := pattern(8, 8)
	quad := Quad{{0.05, 0}, {0.95, 0.1}, {1, 1}, {0, 0.9}}

	first, err := Warp(src, quad, image.InterpLinear)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := homographies.Get(quad); !ok {
		t.Fatal("solved homography was not cached")
	}
	second, err := Warp(src, quad, image.InterpLinear)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(second) {
		t.Error("cached homography changed the result")
	}
}

func TestSolveHomography(t *testing.T) {
	to := Quad{{0.1, 0.2}, {0.9, 0.1}, {0.8, 0.95}, {0.05, 0.7}}
	h, err := solveHomography(IdentityQuad, to)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range IdentityQuad {
		u, v, ok := h.apply(p[0], p[1])
		if !ok || math.Abs(u-to[i][0]) > 1e-9 || math.Abs(v-to[i][1]) > 1e-9 {
			t.Errorf("corner %d maps to (%v, %v), want %v", i, u, v, to[i])
		}
	}
}

func TestRadial_ZeroStrengthIsIdentity(t *testing.T) {
	src := pattern(15, 15)
	for _, fn := range []func(*image.Buffer, float64, image.Interpolation) (*image.Buffer, error){Sphere, FisheyeRemap} {
		dst, err := fn(src, 0, image.InterpLinear)
		if err != nil {
			t.Fatal(err)
		}
		if !dst.Equal(src) {
			t.Error("strength 0 should be identity")
		}
	}
}

func TestRadial_KeepsCenterAndOutside(t *testing.T) {
	src := pattern(21, 21)
	dst, err := Sphere(src, 1, image.InterpNearest)
	if err != nil {
		t.Fatal(err)
	}
	if dst.At(10, 10) != src.At(10, 10) {
		t.Error("center pixel moved")
	}
	if dst.At(0, 0) != src.At(0, 0) {
		t.Error("corner outside the disk changed")
	}
	if dst.Equal(src) {
		t.Error("full strength sphere should change the image")
	}
}

func TestPolar(t *testing.T) {
	src, _ := image.Solid(11, 11, image.FormatRGBA8, image.Color{G: 200, A: 255})
	dst, err := PolarRemap(src, image.InterpLinear)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.At(5, 5); got != (image.Color{G: 200, A: 255}) {
		t.Errorf("center = %+v", got)
	}
	if got := dst.At(0, 0); got != image.Transparent {
		t.Errorf("corner outside disk = %+v, want transparent", got)
	}
}

func TestApply(t *testing.T) {
	src := pattern(12, 10)
	tests := []Params{
		{Kind: Normal},
		{Kind: Perspective, Corners: IdentityQuad, Interp: image.InterpLinear},
		{Kind: Spherical, Strength: 0.5, Interp: image.InterpLinear},
		{Kind: Fisheye, Strength: 0.5, Interp: image.InterpCubic},
		{Kind: Polar, Interp: image.InterpLinear},
	}
	for _, p := range tests {
		t.Run(p.Kind.String(), func(t *testing.T) {
			dst, err := Apply(src, p)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if dst.Width() != 12 || dst.Height() != 10 {
				t.Errorf("size = %dx%d, want 12x10", dst.Width(), dst.Height())
			}
		})
	}

	if _, err := Apply(src, Params{Kind: Projection(42)}); err == nil {
		t.Error("unknown projection should fail")
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("fisheye")
	if err != nil || p != Fisheye {
		t.Errorf("Parse(fisheye) = %v, %v", p, err)
	}
	if _, err := Parse("cylinder"); err == nil {
		t.Error("Parse(cylinder) should fail")
	}
}
