package image

import "testing"

func TestResize(t *testing.T) {
	src, _ := Solid(8, 4, FormatRGB8, Color{R: 50, G: 100, B: 150, A: 255})

	for _, interp := range []Interpolation{InterpNearest, InterpLinear, InterpCubic, InterpArea, InterpLanczos4} {
		t.Run(interp.String(), func(t *testing.T) {
			dst, err := Resize(src, 3, 6, interp)
			if err != nil {
				t.Fatalf("Resize() error = %v", err)
			}
			if dst.Width() != 3 || dst.Height() != 6 || dst.Format() != FormatRGB8 {
				t.Fatalf("Resize() = %dx%d %v", dst.Width(), dst.Height(), dst.Format())
			}
			if got := dst.At(1, 3); got != (Color{R: 50, G: 100, B: 150, A: 255}) {
				t.Errorf("solid resize pixel = %+v", got)
			}
		})
	}

	if _, err := Resize(src, 0, 4, InterpLinear); err == nil {
		t.Error("Resize to zero width should fail")
	}
}

func TestResize_SameSizeIsCopy(t *testing.T) {
	src := gradient(6, 6)
	dst, _ := Resize(src, 6, 6, InterpCubic)
	if !dst.Equal(src) || dst == src {
		t.Error("same-size resize should return an equal copy")
	}
}

func TestCrop(t *testing.T) {
	src := gradient(6, 4)
	fill := Color{B: 1, A: 2}

	dst, err := Crop(src, 4, -1, 4, 3, fill)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.At(0, 1); got != src.At(4, 0) {
		t.Errorf("At(0, 1) = %+v, want %+v", got, src.At(4, 0))
	}
	if got := dst.At(0, 0); got != fill {
		t.Errorf("row above source = %+v, want fill", got)
	}
	if got := dst.At(2, 1); got != fill {
		t.Errorf("column right of source = %+v, want fill", got)
	}
}

func TestFit(t *testing.T) {
	src := gradient(8, 4)
	fill := Color{A: 255}

	tests := []struct {
		mode ScaleMode
		w, h int
	}{
		{ScaleNone, 8, 4},
		{ScaleFit, 5, 5},
		{ScaleCrop, 5, 5},
		{ScaleAspect, 4, 4},
		{ScaleAspectShort, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			target := 5
			if tt.mode == ScaleAspect || tt.mode == ScaleAspectShort {
				target = 4
			}
			dst, err := Fit(src, target, target, tt.mode, InterpLinear, fill)
			if err != nil {
				t.Fatalf("Fit() error = %v", err)
			}
			if dst.Width() != tt.w || dst.Height() != tt.h {
				t.Errorf("Fit() = %dx%d, want %dx%d", dst.Width(), dst.Height(), tt.w, tt.h)
			}
		})
	}
}

func TestFit_AspectShortPads(t *testing.T) {
	src, _ := Solid(8, 4, FormatRGBA8, Color{R: 255, A: 255})
	fill := Color{G: 255, A: 255}

	dst, err := Fit(src, 4, 4, ScaleAspectShort, InterpNearest, fill)
	if err != nil {
		t.Fatal(err)
	}
	// 8x4 shrinks to 4x2 and is centered vertically.
	if got := dst.At(0, 0); got != fill {
		t.Errorf("padding = %+v, want fill", got)
	}
	if got := dst.At(0, 1); got != (Color{R: 255, A: 255}) {
		t.Errorf("content = %+v, want red", got)
	}
}

func TestCropCenter_SameSize(t *testing.T) {
	src := gradient(5, 3)
	dst, _ := CropCenter(src, 5, 3, Transparent)
	if !dst.Equal(src) {
		t.Error("same-size center crop should be identity")
	}
}

func TestResize_UnknownInterpolation(t *testing.T) {
	src := MustBuffer(4, 4, FormatRGB8)
	if _, err := Resize(src, 4, 4, Interpolation(9)); err != ErrUnknownMode {
		t.Errorf("err = %v, want ErrUnknownMode", err)
	}
}
