package image

// Convert returns a copy of src re-encoded with the given number of channels.
//
//   - to 1: BT.601 luminance of RGB; alpha is discarded.
//   - to 3: gray is replicated, alpha is discarded.
//   - to 4: gray is replicated, alpha is 255 unless src already has alpha.
func Convert(src *Buffer, channels int) (*Buffer, error) {
	format, err := FormatForChannels(channels)
	if err != nil {
		return nil, err
	}
	if src.format == format {
		return src.Clone(), nil
	}

	dst := MustBuffer(src.width, src.height, format)
	sbpp := src.format.BytesPerPixel()
	dbpp := format.BytesPerPixel()
	n := src.width * src.height

	for i := range n {
		s := src.data[i*sbpp : i*sbpp+sbpp]
		d := dst.data[i*dbpp : i*dbpp+dbpp]
		switch src.format {
		case FormatGray8:
			switch format {
			case FormatRGB8:
				d[0], d[1], d[2] = s[0], s[0], s[0]
			case FormatRGBA8:
				d[0], d[1], d[2], d[3] = s[0], s[0], s[0], 255
			}
		case FormatRGB8:
			switch format {
			case FormatGray8:
				d[0] = Luminance(s[0], s[1], s[2])
			case FormatRGBA8:
				d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 255
			}
		case FormatRGBA8:
			switch format {
			case FormatGray8:
				d[0] = Luminance(s[0], s[1], s[2])
			case FormatRGB8:
				d[0], d[1], d[2] = s[0], s[1], s[2]
			}
		}
	}
	return dst, nil
}

// ToRGBA converts src to 4 channels. Absent alpha becomes fully opaque.
func ToRGBA(src *Buffer) *Buffer {
	dst, _ := Convert(src, 4)
	return dst
}

// ToGray converts src to a single luminance channel.
func ToGray(src *Buffer) *Buffer {
	dst, _ := Convert(src, 1)
	return dst
}

// Solid returns a buffer of the given size and format filled with c.
func Solid(width, height int, format Format, c Color) (*Buffer, error) {
	b, err := NewBuffer(width, height, format)
	if err != nil {
		return nil, err
	}
	b.Fill(c)
	return b, nil
}

// Coerce is the single entry point every stage uses for optional operands.
// A nil src is replaced by a width×height RGBA buffer filled with matte;
// otherwise src is converted to RGBA (absent alpha becomes 255).
// width and height are only consulted when src is nil.
func Coerce(src *Buffer, width, height int, matte Color) (*Buffer, error) {
	if src == nil {
		return Solid(width, height, FormatRGBA8, matte)
	}
	return ToRGBA(src), nil
}

// Matte composites src over a solid matte color, keeping src's alpha plane.
// Fully opaque pixels are returned unchanged.
func Matte(src *Buffer, matte Color) *Buffer {
	dst := ToRGBA(src)
	d := dst.data
	for i := 0; i < len(d); i += 4 {
		a := uint16(d[i+3])
		if a == 255 {
			continue
		}
		inv := 255 - a
		d[i] = uint8((uint16(d[i])*a + uint16(matte.R)*inv + 127) / 255)
		d[i+1] = uint8((uint16(d[i+1])*a + uint16(matte.G)*inv + 127) / 255)
		d[i+2] = uint8((uint16(d[i+2])*a + uint16(matte.B)*inv + 127) / 255)
	}
	return dst
}

// Flatten composites src over an opaque matte and drops alpha, returning RGB.
func Flatten(src *Buffer, matte Color) *Buffer {
	matte.A = 255
	rgba := Matte(src, matte)
	dst, _ := Convert(rgba, 3)
	return dst
}

// Alpha returns the alpha plane of src as a Gray8 buffer.
// Buffers without alpha yield a fully opaque plane.
func Alpha(src *Buffer) *Buffer {
	dst := MustBuffer(src.width, src.height, FormatGray8)
	if !src.format.HasAlpha() {
		dst.Fill(Color{255, 255, 255, 255})
		return dst
	}
	for i := range dst.data {
		dst.data[i] = src.data[i*4+3]
	}
	return dst
}

// Invert returns 255-v for every color sample; alpha is preserved.
func Invert(src *Buffer) *Buffer {
	dst := src.Clone()
	bpp := dst.format.BytesPerPixel()
	colors := bpp
	if dst.format.HasAlpha() {
		colors = 3
	}
	for i := 0; i < len(dst.data); i += bpp {
		for c := range colors {
			dst.data[i+c] = 255 - dst.data[i+c]
		}
	}
	return dst
}

// InvertAll returns 255-v for every sample including alpha.
func InvertAll(src *Buffer) *Buffer {
	dst := src.Clone()
	for i, v := range dst.data {
		dst.data[i] = 255 - v
	}
	return dst
}

// Plane extracts channel c of src as a Gray8 buffer.
func Plane(src *Buffer, c int) (*Buffer, error) {
	bpp := src.format.BytesPerPixel()
	if c < 0 || c >= bpp {
		return nil, ErrChannelCount
	}
	dst := MustBuffer(src.width, src.height, FormatGray8)
	for i := range dst.data {
		dst.data[i] = src.data[i*bpp+c]
	}
	return dst, nil
}

// ClampByte rounds v to the nearest integer and clamps it to [0, 255].
func ClampByte(v float64) uint8 {
	if v != v || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
