package compose

import (
	"github.com/gogpu/gg-compose/internal/blend"
	"github.com/gogpu/gg-compose/internal/channel"
	"github.com/gogpu/gg-compose/internal/color"
	"github.com/gogpu/gg-compose/internal/geometry"
	"github.com/gogpu/gg-compose/internal/image"
	"github.com/gogpu/gg-compose/internal/projection"
	"github.com/gogpu/gg-compose/internal/shape"
)

// Pixel model.
type (
	// Buffer is an 8-bit Gray, RGB or RGBA pixel buffer.
	Buffer = image.Buffer

	// Color is an 8-bit straight-alpha RGBA color, used as matte and fill.
	Color = image.Color

	// Format is the storage format of a Buffer.
	Format = image.Format
)

// Pixel formats.
const (
	FormatGray8 = image.FormatGray8
	FormatRGB8  = image.FormatRGB8
	FormatRGBA8 = image.FormatRGBA8
)

// Vec2 is a pair of floating-point parameters, usually x and y.
type Vec2 = [2]float64

// Size is a width and height in pixels.
type Size = [2]int

// Quad holds four corners as canvas fractions in TL, TR, BR, BL order.
type Quad = projection.Quad

// IdentityQuad covers the whole canvas.
var IdentityQuad = projection.IdentityQuad

// Enumerations.
type (
	EdgeMode      = image.EdgeMode
	Interpolation = image.Interpolation
	ScaleMode     = image.ScaleMode
	MirrorMode    = geometry.MirrorMode
	Orientation   = geometry.Orientation
	Projection    = projection.Projection
	BlendMode     = blend.Mode
	Selector      = channel.Selector
	Scheme        = color.Scheme
	ShapeKind     = shape.Kind
)

const (
	EdgeClip   = image.EdgeClip
	EdgeWrap   = image.EdgeWrap
	EdgeMirror = image.EdgeMirror
)

const (
	InterpNearest  = image.InterpNearest
	InterpLinear   = image.InterpLinear
	InterpCubic    = image.InterpCubic
	InterpArea     = image.InterpArea
	InterpLanczos4 = image.InterpLanczos4
)

const (
	ScaleNone        = image.ScaleNone
	ScaleFit         = image.ScaleFit
	ScaleCrop        = image.ScaleCrop
	ScaleAspect      = image.ScaleAspect
	ScaleAspectShort = image.ScaleAspectShort
)

const (
	MirrorNone   = geometry.MirrorNone
	MirrorX      = geometry.MirrorX
	MirrorFlipX  = geometry.MirrorFlipX
	MirrorY      = geometry.MirrorY
	MirrorFlipY  = geometry.MirrorFlipY
	MirrorXY     = geometry.MirrorXY
	MirrorFlipXY = geometry.MirrorFlipXY
)

const (
	Horizontal = geometry.Horizontal
	Vertical   = geometry.Vertical
	Grid       = geometry.Grid
)

const (
	ProjectionNormal      = projection.Normal
	ProjectionPerspective = projection.Perspective
	ProjectionSpherical   = projection.Spherical
	ProjectionFisheye     = projection.Fisheye
	ProjectionPolar       = projection.Polar
)

const (
	BlendNormal      = blend.Normal
	BlendAdd         = blend.Add
	BlendSubtract    = blend.Subtract
	BlendMultiply    = blend.Multiply
	BlendDivide      = blend.Divide
	BlendScreen      = blend.Screen
	BlendOverlay     = blend.Overlay
	BlendHardLight   = blend.HardLight
	BlendSoftLight   = blend.SoftLight
	BlendDarken      = blend.Darken
	BlendLighten     = blend.Lighten
	BlendColorDodge  = blend.ColorDodge
	BlendColorBurn   = blend.ColorBurn
	BlendDifference  = blend.Difference
	BlendExclusion   = blend.Exclusion
	BlendNegation    = blend.Negation
	BlendLinearLight = blend.LinearLight
	BlendPinLight    = blend.PinLight
	BlendVividLight  = blend.VividLight
	BlendReflect     = blend.Reflect
	BlendGlow        = blend.Glow
	BlendHue         = blend.Hue
	BlendSaturation  = blend.Saturation
	BlendColor       = blend.Color
	BlendLuminosity  = blend.Luminosity
)

const (
	RedA     = channel.RedA
	GreenA   = channel.GreenA
	BlueA    = channel.BlueA
	AlphaA   = channel.AlphaA
	RedB     = channel.RedB
	GreenB   = channel.GreenB
	BlueB    = channel.BlueB
	AlphaB   = channel.AlphaB
	Constant = channel.Constant
)

const (
	Complementary      = color.Complementary
	SplitComplementary = color.SplitComplementary
	Analogous          = color.Analogous
	Triadic            = color.Triadic
	Tetradic           = color.Tetradic
	Square             = color.Square
	Compound           = color.Compound
)

const (
	ShapeCircle    = shape.Circle
	ShapeSquare    = shape.Square
	ShapeEllipse   = shape.Ellipse
	ShapeRectangle = shape.Rectangle
	ShapePolygon   = shape.Polygon
)

// configErr wraps a parse failure with ErrConfiguration.
func configErr[T any](v T, err error) (T, error) {
	return v, classify(err)
}

// ParseEdgeMode parses CLIP, WRAP or MIRROR.
func ParseEdgeMode(name string) (EdgeMode, error) {
	return configErr(image.ParseEdgeMode(name))
}

// ParseInterpolation parses NEAREST, LINEAR, CUBIC, AREA or LANCZOS4.
func ParseInterpolation(name string) (Interpolation, error) {
	return configErr(image.ParseInterpolation(name))
}

// ParseScaleMode parses NONE, FIT, CROP, ASPECT or ASPECT_SHORT.
func ParseScaleMode(name string) (ScaleMode, error) {
	return configErr(image.ParseScaleMode(name))
}

// ParseMirrorMode parses NONE, X, FLIP_X, Y, FLIP_Y, XY or FLIP_XY.
func ParseMirrorMode(name string) (MirrorMode, error) {
	return configErr(geometry.ParseMirrorMode(name))
}

// ParseOrientation parses HORIZONTAL, VERTICAL or GRID.
func ParseOrientation(name string) (Orientation, error) {
	return configErr(geometry.ParseOrientation(name))
}

// ParseProjection parses NORMAL, PERSPECTIVE, SPHERICAL, FISHEYE or POLAR.
func ParseProjection(name string) (Projection, error) {
	return configErr(projection.Parse(name))
}

// ParseBlendMode parses a blend mode name such as MULTIPLY or SOFT_LIGHT.
func ParseBlendMode(name string) (BlendMode, error) {
	return configErr(blend.ParseMode(name))
}

// ParseSelector parses a swizzle selector such as RED_A or CONSTANT.
func ParseSelector(name string) (Selector, error) {
	return configErr(channel.ParseSelector(name))
}

// ParseScheme parses a color-harmony scheme such as TRIADIC.
func ParseScheme(name string) (Scheme, error) {
	return configErr(color.ParseScheme(name))
}

// ParseShapeKind parses CIRCLE, SQUARE, ELLIPSE, RECTANGLE or POLYGON.
func ParseShapeKind(name string) (ShapeKind, error) {
	return configErr(shape.ParseKind(name))
}

// Load reads a PNG or JPEG file.
func Load(path string) (*Buffer, error) {
	b, err := image.Load(path)
	return b, classify(err)
}

// Save writes b as PNG or JPEG, chosen by the file extension.
func Save(b *Buffer, path string) error {
	return classify(b.Save(path))
}

// BlendModes returns every blend mode in declaration order.
func BlendModes() []BlendMode {
	return blend.Modes()
}
