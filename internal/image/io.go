package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Load reads a PNG or JPEG file, choosing the codec by extension.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return DecodePNG(f)
	case ".jpg", ".jpeg":
		return DecodeJPEG(f)
	default:
		return Decode(f)
	}
}

// LoadFromBytes decodes an encoded image held in memory.
func LoadFromBytes(data []byte) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes any registered image format.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStd(img), nil
}

// DecodePNG decodes a PNG stream.
func DecodePNG(r io.Reader) (*Buffer, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode png: %w", err)
	}
	return FromStd(img), nil
}

// DecodeJPEG decodes a JPEG stream.
func DecodeJPEG(r io.Reader) (*Buffer, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode jpeg: %w", err)
	}
	return FromStd(img), nil
}

// Save writes b to path, choosing the codec by extension.
func (b *Buffer) Save(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = b.EncodePNG(f)
	case ".jpg", ".jpeg":
		err = b.EncodeJPEG(f, 90)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("image: close file: %w", cerr)
	}
	return err
}

// EncodePNG writes b as PNG.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, ToStd(b)); err != nil {
		return fmt.Errorf("image: encode png: %w", err)
	}
	return nil
}

// EncodeJPEG writes b as JPEG. Alpha is dropped by the codec.
func (b *Buffer) EncodeJPEG(w io.Writer, quality int) error {
	if err := jpeg.Encode(w, ToStd(b), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode jpeg: %w", err)
	}
	return nil
}

// EncodeToBytes returns b encoded as PNG.
func (b *Buffer) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromStd converts a standard library image. Grayscale images become Gray8,
// everything else RGBA8 with straight alpha.
func FromStd(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf := MustBuffer(w, h, FormatGray8)
		for y := range h {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Row(y), src.Pix[off:off+w])
		}
		return buf
	case *image.NRGBA:
		buf := MustBuffer(w, h, FormatRGBA8)
		for y := range h {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Row(y), src.Pix[off:off+w*4])
		}
		return buf
	}

	buf := MustBuffer(w, h, FormatRGBA8)
	for y := range h {
		row := buf.Row(y)
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := x * 4
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return buf
}

// ToStd converts b to a standard library image. Gray8 becomes *image.Gray,
// RGB8 and RGBA8 become *image.NRGBA.
func ToStd(b *Buffer) image.Image {
	if b.format == FormatGray8 {
		img := image.NewGray(image.Rect(0, 0, b.width, b.height))
		copy(img.Pix, b.data)
		return img
	}

	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	if b.format == FormatRGBA8 {
		copy(img.Pix, b.data)
		return img
	}
	for i, j := 0, 0; i < len(b.data); i, j = i+3, j+4 {
		img.Pix[j], img.Pix[j+1], img.Pix[j+2], img.Pix[j+3] = b.data[i], b.data[i+1], b.data[i+2], 255
	}
	return img
}
