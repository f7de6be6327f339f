package color

import (
	"testing"

	"github.com/gogpu/gg-compose/internal/image"
)

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestHarmonize_RedComplementaryIsCyan(t *testing.T) {
	red, _ := image.Solid(4, 4, image.FormatRGBA8, image.Color{R: 255, A: 200})

	out, err := Harmonize(red, Complementary, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if !out[0].Equal(red) {
		t.Error("first image should be the original")
	}
	c := out[1].At(2, 2)
	if !near(c.R, 0, 1) || !near(c.G, 255, 1) || !near(c.B, 255, 1) || c.A != 200 {
		t.Errorf("complement of red = %+v, want cyan with alpha kept", c)
	}
}

func TestHarmonize_SchemeSizes(t *testing.T) {
	src, _ := image.Solid(2, 2, image.FormatRGB8, image.Color{R: 10, G: 200, B: 90})
	tests := []struct {
		scheme Scheme
		want   int
	}{
		{Complementary, 2},
		{SplitComplementary, 3},
		{Analogous, 3},
		{Triadic, 3},
		{Tetradic, 4},
		{Square, 4},
		{Compound, 4},
	}
	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			out, err := Harmonize(src, tt.scheme, 15)
			if err != nil {
				t.Fatal(err)
			}
			if len(out) != tt.want || len(out) > 5 {
				t.Errorf("len = %d, want %d", len(out), tt.want)
			}
		})
	}

	if _, err := Harmonize(src, Scheme(99), 0); err == nil {
		t.Error("unknown scheme should fail")
	}
}

func TestRotateHue(t *testing.T) {
	red, _ := image.Solid(1, 1, image.FormatRGB8, image.Color{R: 255})

	green := RotateHue(red, 120).At(0, 0)
	if !near(green.R, 0, 1) || !near(green.G, 255, 1) || !near(green.B, 0, 1) {
		t.Errorf("red + 120 = %+v, want green", green)
	}

	back := RotateHue(red, -360).At(0, 0)
	if !near(back.R, 255, 1) || back.G > 1 || back.B > 1 {
		t.Errorf("red - 360 = %+v, want red", back)
	}

	gray, _ := image.Solid(2, 2, image.FormatGray8, image.Color{R: 90, G: 90, B: 90})
	if !RotateHue(gray, 90).Equal(gray) {
		t.Error("gray buffers should be unchanged")
	}
}

func TestScheme_Offsets(t *testing.T) {
	got := Triadic.Offsets()
	got[0] = 0
	if Triadic.Offsets()[0] != 120 {
		t.Error("Offsets must return a copy")
	}
	if Scheme(42).Offsets() != nil {
		t.Error("unknown scheme should have no offsets")
	}

	s, err := ParseScheme("split-complementary")
	if err != nil || s != SplitComplementary {
		t.Errorf("ParseScheme = %v, %v", s, err)
	}
}
