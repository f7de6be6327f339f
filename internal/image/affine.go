package image

import "math"

// Affine maps destination pixel positions to source positions and back.
// The six coefficients are the first two rows of a 3x3 matrix:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
type Affine [6]float64

// Identity leaves every point unchanged.
func Identity() Affine {
	return Affine{1, 0, 0, 0, 1, 0}
}

// Translate shifts points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{1, 0, tx, 0, 1, ty}
}

// Scale scales by (sx, sy) about the origin. Negative factors flip.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, 0, sy, 0}
}

// Rotate rotates by angle radians about the origin. On a top-left-origin
// raster a positive angle turns clockwise.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{cos, -sin, 0, sin, cos, 0}
}

// About conjugates m so that it acts about (cx, cy) instead of the origin.
func About(cx, cy float64, m Affine) Affine {
	return Translate(cx, cy).Multiply(m).Multiply(Translate(-cx, -cy))
}

// Multiply returns m·n, the transform that applies n first, then m.
func (m Affine) Multiply(n Affine) Affine {
	return Affine{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// Invert returns the inverse of m, or false when m is singular.
func (m Affine) Invert() (Affine, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}
	k := 1 / det
	return Affine{
		m[4] * k,
		-m[1] * k,
		(m[1]*m[5] - m[2]*m[4]) * k,
		-m[3] * k,
		m[0] * k,
		(m[2]*m[3] - m[0]*m[5]) * k,
	}, true
}

// Apply maps (x, y) through m.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Affine) IsIdentity() bool {
	return m == Identity()
}
