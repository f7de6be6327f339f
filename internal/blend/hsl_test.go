package blend

import (
	"math"
	"testing"
)

const hslEps = 1e-9

func nearRGB(a, b rgb, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestLumSat(t *testing.T) {
	tests := []struct {
		name     string
		c        rgb
		lum, sat float64
	}{
		{"black", rgb{0, 0, 0}, 0, 0},
		{"white", rgb{1, 1, 1}, 1, 0},
		{"red", rgb{1, 0, 0}, 0.30, 1},
		{"green", rgb{0, 1, 0}, 0.59, 1},
		{"blue", rgb{0, 0, 1}, 0.11, 1},
		{"mixed", rgb{0.2, 0.6, 0.4}, 0.458, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lum(tt.c); math.Abs(got-tt.lum) > hslEps {
				t.Errorf("lum = %v, want %v", got, tt.lum)
			}
			if got := sat(tt.c); math.Abs(got-tt.sat) > hslEps {
				t.Errorf("sat = %v, want %v", got, tt.sat)
			}
		})
	}
}

func TestOrder(t *testing.T) {
	tests := []struct {
		c           rgb
		lo, mid, hi int
	}{
		{rgb{0.1, 0.2, 0.3}, 0, 1, 2},
		{rgb{0.3, 0.2, 0.1}, 2, 1, 0},
		{rgb{0.2, 0.3, 0.1}, 2, 0, 1},
		{rgb{0.2, 0.1, 0.3}, 1, 0, 2},
		{rgb{0.3, 0.1, 0.2}, 1, 2, 0},
		{rgb{0.1, 0.3, 0.2}, 0, 2, 1},
	}
	for _, tt := range tests {
		lo, mid, hi := order(tt.c)
		if lo != tt.lo || mid != tt.mid || hi != tt.hi {
			t.Errorf("order(%v) = %d,%d,%d, want %d,%d,%d", tt.c, lo, mid, hi, tt.lo, tt.mid, tt.hi)
		}
	}
}

func TestClipColor_KeepsLumaInRange(t *testing.T) {
	for _, c := range []rgb{{1.4, 0.5, 0.2}, {-0.3, 0.4, 0.6}, {0.5, 0.5, 0.5}} {
		got := clipColor(c)
		for i, v := range got {
			if v < -hslEps || v > 1+hslEps {
				t.Errorf("clipColor(%v)[%d] = %v out of range", c, i, v)
			}
		}
		if l := lum(c); l >= 0 && l <= 1 && math.Abs(lum(got)-l) > 1e-6 {
			t.Errorf("clipColor(%v) changed luma %v -> %v", c, l, lum(got))
		}
	}
}

func TestSetSat(t *testing.T) {
	got := setSat(rgb{0.2, 0.6, 0.4}, 0.5)
	if !nearRGB(got, rgb{0, 0.5, 0.25}, hslEps) {
		t.Errorf("setSat = %v", got)
	}
	gray := rgb{0.4, 0.4, 0.4}
	if got := setSat(gray, 0.8); got != gray {
		t.Errorf("setSat(gray) = %v, want unchanged", got)
	}
}

func TestNonSeparable(t *testing.T) {
	red := rgb{1, 0, 0}
	gray := rgb{0.5, 0.5, 0.5}

	t.Run("luminosity of gray source keeps hue", func(t *testing.T) {
		got := nonSeparable(Luminosity, red, gray)
		if math.Abs(lum(got)-0.5) > 1e-6 {
			t.Errorf("lum = %v, want 0.5", lum(got))
		}
		if !(got[0] > got[1] && got[1] == got[2]) {
			t.Errorf("result %v lost the red hue", got)
		}
	})

	t.Run("color over gray backdrop keeps backdrop luma", func(t *testing.T) {
		got := nonSeparable(Color, gray, red)
		if math.Abs(lum(got)-0.5) > 1e-6 {
			t.Errorf("lum = %v, want 0.5", lum(got))
		}
	})

	t.Run("saturation from gray source desaturates", func(t *testing.T) {
		got := nonSeparable(Saturation, rgb{0.8, 0.2, 0.4}, gray)
		if sat(got) > hslEps {
			t.Errorf("sat = %v, want 0", sat(got))
		}
	})

	t.Run("hue onto gray backdrop stays gray", func(t *testing.T) {
		got := nonSeparable(Hue, gray, red)
		if !nearRGB(got, gray, 1e-6) {
			t.Errorf("got %v, want %v", got, gray)
		}
	})

	t.Run("identical operands are fixed points", func(t *testing.T) {
		c := rgb{0.7, 0.3, 0.1}
		for _, m := range []Mode{Hue, Saturation, Color, Luminosity} {
			if got := nonSeparable(m, c, c); !nearRGB(got, c, 1e-6) {
				t.Errorf("%v: got %v, want %v", m, got, c)
			}
		}
	})
}
