package projection

import (
	"math"

	"github.com/gogpu/gg-compose/internal/image"
	"github.com/tanema/gween/ease"
)

// radialRemap warps the disk inscribed in the canvas. A pixel at normalized
// radius r samples the source at radius lerp(r, profile(r), strength) along
// the same angle. Pixels outside the disk are copied unchanged.
func radialRemap(src *image.Buffer, strength float64, profile ease.TweenFunc, interp image.Interpolation) (*image.Buffer, error) {
	strength = math.Max(0, math.Min(1, strength))
	w, h := src.Bounds()
	if strength == 0 {
		return src.Clone(), nil
	}

	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	radius := math.Max(math.Min(cx, cy), 1)

	return image.Remap(src, w, h, interp, image.EdgeClip, image.Transparent, func(x, y float64) (float64, float64, bool) {
		dx, dy := x-cx, y-cy
		r := math.Hypot(dx, dy) / radius
		if r == 0 || r >= 1 {
			return x, y, true
		}
		warped := float64(profile(float32(r), 0, 1, 1))
		k := (r + (warped-r)*strength) / r
		return cx + dx*k, cy + dy*k, true
	})
}

// Sphere applies the spherical lens remap. strength is clamped to [0, 1];
// 0 is the identity.
func Sphere(src *image.Buffer, strength float64, interp image.Interpolation) (*image.Buffer, error) {
	return radialRemap(src, strength, ease.InQuad, interp)
}

// FisheyeRemap applies the fisheye lens remap. strength is clamped to [0, 1];
// 0 is the identity.
func FisheyeRemap(src *image.Buffer, strength float64, interp image.Interpolation) (*image.Buffer, error) {
	return radialRemap(src, strength, ease.InCirc, interp)
}

// PolarRemap wraps src around the canvas center: the source x axis becomes
// the angle (starting at the left, running clockwise on screen) and the
// source y axis the radius. Pixels outside the inscribed disk are transparent.
func PolarRemap(src *image.Buffer, interp image.Interpolation) (*image.Buffer, error) {
	w, h := src.Bounds()
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	radius := math.Max(math.Min(cx, cy), 1)
	sw, sh := float64(w-1), float64(h-1)

	return image.Remap(src, w, h, interp, image.EdgeClip, image.Transparent, func(x, y float64) (float64, float64, bool) {
		dx, dy := x-cx, y-cy
		r := math.Hypot(dx, dy) / radius
		if r > 1 {
			return 0, 0, false
		}
		a := (math.Atan2(dy, dx) + math.Pi) / (2 * math.Pi)
		return a * sw, r * sh, true
	})
}
