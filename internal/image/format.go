// Package image provides the pixel buffer model shared by every compositing stage.
package image

// Format is the storage layout of a Buffer. Every format uses one byte per
// channel, interleaved in R, G, B, A order.
type Format uint8

const (
	// FormatGray8 is a single channel: a mask or a grayscale image.
	FormatGray8 Format = iota

	// FormatRGB8 is opaque color.
	FormatRGB8

	// FormatRGBA8 is color with straight (non-premultiplied) alpha, the
	// working format of every compositing stage.
	FormatRGBA8

	formatCount
)

var formats = [formatCount]struct {
	name     string
	channels int
}{
	FormatGray8: {"Gray8", 1},
	FormatRGB8:  {"RGB8", 3},
	FormatRGBA8: {"RGBA8", 4},
}

// FormatForChannels returns the format with the given channel count.
// Only 1, 3 and 4 channels are representable.
func FormatForChannels(channels int) (Format, error) {
	for f, info := range formats {
		if info.channels == channels {
			return Format(f), nil
		}
	}
	return 0, ErrChannelCount
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// Channels returns the number of samples per pixel, 0 for unknown formats.
func (f Format) Channels() int {
	if !f.IsValid() {
		return 0
	}
	return formats[f].channels
}

// BytesPerPixel equals Channels, since every sample is one byte.
func (f Format) BytesPerPixel() int {
	return f.Channels()
}

// HasAlpha reports whether f carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f == FormatRGBA8
}

func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return formats[f].name
}

// RowBytes returns the byte length of one row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.Channels()
}

// ImageBytes returns the byte length of a width×height buffer.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
