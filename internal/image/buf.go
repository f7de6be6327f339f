// Package image provides the pixel buffer model shared by every compositing stage.
//
// A Buffer holds 8-bit samples in row-major order with a top-left origin and
// R,G,B,A channel order. Buffers handed between stages are treated as
// immutable: every stage allocates a new Buffer for its result.
package image

import "errors"

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrChannelCount is returned for channel counts other than 1, 3 or 4.
	ErrChannelCount = errors.New("image: unsupported channel count")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrUnknownMode is returned for an out-of-range enumeration value.
	ErrUnknownMode = errors.New("image: unknown mode")
)

// Color is an 8-bit straight-alpha RGBA color. It is used as the matte that
// fills absent operands and regions exposed by resampling.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the zero color.
var Transparent = Color{}

// Buffer is a packed 8-bit pixel buffer with 1, 3 or 4 channels.
//
// Thread safety: Buffer is safe for concurrent read access. Writes are only
// performed by the stage that allocated the buffer, before it is published.
type Buffer struct {
	data   []byte
	width  int
	height int
	format Format
}

// NewBuffer creates a zeroed buffer with the given dimensions and format.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	return &Buffer{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// MustBuffer is like NewBuffer but panics on invalid arguments.
// It is intended for callers that derived the dimensions from an existing buffer.
func MustBuffer(width, height int, format Format) *Buffer {
	b, err := NewBuffer(width, height, format)
	if err != nil {
		panic(err)
	}
	return b
}

// FromRaw creates a Buffer from existing packed data without copying.
// The caller must not modify data afterwards.
func FromRaw(data []byte, width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	requiredSize := format.ImageBytes(width, height)
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &Buffer{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer. Cloning nil returns nil.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &Buffer{
		data:   newData,
		width:  b.width,
		height: b.height,
		format: b.format,
	}
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Channels returns the number of channels per pixel.
func (b *Buffer) Channels() int {
	return b.format.Channels()
}

// Bounds returns the image dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// SameSize reports whether b and o have identical dimensions.
func (b *Buffer) SameSize(o *Buffer) bool {
	return b.width == o.width && b.height == o.height
}

// Data returns the raw pixel data slice.
func (b *Buffer) Data() []byte {
	return b.data
}

// Row returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *Buffer) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.format.RowBytes(b.width)
	return b.data[y*stride : (y+1)*stride]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * b.format.BytesPerPixel()
}

// Pixel returns a slice of the raw samples for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (b *Buffer) Pixel(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+b.format.BytesPerPixel()]
}

// At returns the color at (x, y).
// Gray pixels expand to r=g=b=gray, a=255; RGB pixels get a=255.
// Returns the zero color if coordinates are out of bounds.
func (b *Buffer) At(x, y int) Color {
	p := b.Pixel(x, y)
	if p == nil {
		return Color{}
	}
	switch b.format {
	case FormatGray8:
		return Color{p[0], p[0], p[0], 255}
	case FormatRGB8:
		return Color{p[0], p[1], p[2], 255}
	default:
		return Color{p[0], p[1], p[2], p[3]}
	}
}

// Set stores c at (x, y), converting to the buffer's format.
// Gray buffers store the BT.601 luminance of c.
func (b *Buffer) Set(x, y int, c Color) error {
	p := b.Pixel(x, y)
	if p == nil {
		return ErrOutOfBounds
	}
	encode(p, b.format, c)
	return nil
}

// Fill sets all pixels to c.
func (b *Buffer) Fill(c Color) {
	bpp := b.format.BytesPerPixel()
	if len(b.data) == 0 {
		return
	}
	encode(b.data[:bpp], b.format, c)
	for i := bpp; i < len(b.data); i *= 2 {
		copy(b.data[i:], b.data[:i])
	}
}

// Equal reports whether two buffers have the same size, format and samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.width != o.width || b.height != o.height || b.format != o.format {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// ByteSize returns the total size of the image data in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// encode writes c into the pixel slice p for the given format.
func encode(p []byte, f Format, c Color) {
	switch f {
	case FormatGray8:
		p[0] = Luminance(c.R, c.G, c.B)
	case FormatRGB8:
		p[0], p[1], p[2] = c.R, c.G, c.B
	default:
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	}
}

// Luminance returns the BT.601 luma of an RGB triple.
// Standard luminance: 0.299*R + 0.587*G + 0.114*B
func Luminance(r, g, b uint8) uint8 {
	return uint8((int(r)*299 + int(g)*587 + int(b)*114 + 500) / 1000)
}
