package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestFromStd(t *testing.T) {
	t.Run("NRGBA", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
		img.Set(3, 3, color.NRGBA{R: 128, G: 64, B: 32, A: 200})

		buf := FromStd(img)
		if buf.Format() != FormatRGBA8 {
			t.Fatalf("format = %v, want RGBA8", buf.Format())
		}
		if got := buf.At(3, 3); got != (Color{R: 128, G: 64, B: 32, A: 200}) {
			t.Errorf("At(3, 3) = %+v", got)
		}
	})

	t.Run("Gray", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 4, 4))
		img.SetGray(1, 2, color.Gray{Y: 77})

		buf := FromStd(img)
		if buf.Format() != FormatGray8 || buf.Pixel(1, 2)[0] != 77 {
			t.Errorf("FromStd(gray) = %v %v", buf.Format(), buf.Pixel(1, 2))
		}
	})

	t.Run("RGBA premultiplied", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		img.Set(0, 0, color.RGBA{R: 100, A: 255})

		buf := FromStd(img)
		if got := buf.At(0, 0); got != (Color{R: 100, A: 255}) {
			t.Errorf("At(0, 0) = %+v", got)
		}
	})

	t.Run("SubImage offset", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
		img.Set(5, 6, color.NRGBA{G: 255, A: 255})
		sub := img.SubImage(image.Rect(4, 4, 8, 8))

		buf := FromStd(sub)
		if buf.Width() != 4 || buf.At(1, 2) != (Color{G: 255, A: 255}) {
			t.Errorf("sub image pixel = %+v", buf.At(1, 2))
		}
	})
}

func TestToStd(t *testing.T) {
	rgb := MustBuffer(2, 2, FormatRGB8)
	_ = rgb.Set(1, 1, Color{R: 1, G: 2, B: 3})

	img, ok := ToStd(rgb).(*image.NRGBA)
	if !ok {
		t.Fatalf("ToStd(rgb) type = %T, want *image.NRGBA", ToStd(rgb))
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("NRGBAAt(1, 1) = %+v", got)
	}

	if _, ok := ToStd(MustBuffer(1, 1, FormatGray8)).(*image.Gray); !ok {
		t.Error("ToStd(gray) should return *image.Gray")
	}
}

func TestPNGRoundTrip(t *testing.T) {
	src := gradient(6, 5)

	var buf bytes.Buffer
	if err := src.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	got, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("DecodePNG() error = %v", err)
	}
	if !got.Equal(src) {
		t.Error("PNG round trip changed pixels")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := gradient(4, 4)

	path := filepath.Join(dir, "out.png")
	if err := src.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.Equal(src) {
		t.Error("saved and loaded PNG differ")
	}

	jpg := filepath.Join(dir, "out.jpg")
	if err := src.Save(jpg); err != nil {
		t.Fatalf("Save(jpg) error = %v", err)
	}
	if _, err := Load(jpg); err != nil {
		t.Errorf("Load(jpg) error = %v", err)
	}

	if err := src.Save(filepath.Join(dir, "out.bmp")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(bmp) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadFromBytes(t *testing.T) {
	if _, err := LoadFromBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("LoadFromBytes(nil) error = %v, want ErrEmptyData", err)
	}

	data, err := gradient(3, 3).EncodeToBytes()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromBytes(data); err != nil {
		t.Errorf("LoadFromBytes() error = %v", err)
	}
	if _, err := LoadFromBytes([]byte("not an image")); err == nil {
		t.Error("LoadFromBytes(garbage) should fail")
	}
}
