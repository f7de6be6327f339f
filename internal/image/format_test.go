package image

import (
	"errors"
	"testing"
)

func TestFormat_Properties(t *testing.T) {
	tests := []struct {
		format   Format
		name     string
		channels int
		alpha    bool
	}{
		{FormatGray8, "Gray8", 1, false},
		{FormatRGB8, "RGB8", 3, false},
		{FormatRGBA8, "RGBA8", 4, true},
		{Format(200), "Unknown", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.format
			if f.String() != tt.name {
				t.Errorf("String() = %q", f.String())
			}
			if f.Channels() != tt.channels || f.BytesPerPixel() != tt.channels {
				t.Errorf("Channels() = %d, BytesPerPixel() = %d, want %d", f.Channels(), f.BytesPerPixel(), tt.channels)
			}
			if f.HasAlpha() != tt.alpha {
				t.Errorf("HasAlpha() = %v", f.HasAlpha())
			}
			if f.IsValid() != (tt.channels > 0) {
				t.Errorf("IsValid() = %v", f.IsValid())
			}
		})
	}
}

func TestFormatForChannels(t *testing.T) {
	for _, want := range []Format{FormatGray8, FormatRGB8, FormatRGBA8} {
		got, err := FormatForChannels(want.Channels())
		if err != nil || got != want {
			t.Errorf("FormatForChannels(%d) = %v, %v, want %v", want.Channels(), got, err, want)
		}
	}
	for _, n := range []int{0, 2, 5} {
		if _, err := FormatForChannels(n); !errors.Is(err, ErrChannelCount) {
			t.Errorf("FormatForChannels(%d) error = %v, want ErrChannelCount", n, err)
		}
	}
}

func TestFormat_Sizes(t *testing.T) {
	if got := FormatRGB8.ImageBytes(10, 5); got != 150 {
		t.Errorf("RGB8 ImageBytes(10,5) = %d, want 150", got)
	}
	if got := FormatGray8.RowBytes(7); got != 7 {
		t.Errorf("Gray8 RowBytes(7) = %d, want 7", got)
	}
}
