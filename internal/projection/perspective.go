package projection

import (
	"math"

	"github.com/gogpu/gg-compose/internal/cache"
	"github.com/gogpu/gg-compose/internal/image"
	"gonum.org/v1/gonum/mat"
)

// homography is a projective map with h8 fixed to 1.
type homography [8]float64

func (h homography) apply(x, y float64) (float64, float64, bool) {
	den := h[6]*x + h[7]*y + 1
	if math.Abs(den) < 1e-12 {
		return 0, 0, false
	}
	return (h[0]*x + h[1]*y + h[2]) / den, (h[3]*x + h[4]*y + h[5]) / den, true
}

// homographies memoizes solved maps by target corners; a batch usually
// warps every item onto the same quadrilateral.
var homographies = cache.New[Quad, homography](256)

// solveHomography returns the projective map taking each from[i] to to[i].
func solveHomography(from, to Quad) (homography, error) {
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)
	for i := range 4 {
		x, y := from[i][0], from[i][1]
		u, v := to[i][0], to[i][1]

		a.SetRow(2*i, []float64{x, y, 1, 0, 0, 0, -x * u, -y * u})
		b.SetVec(2*i, u)
		a.SetRow(2*i+1, []float64{0, 0, 0, x, y, 1, -x * v, -y * v})
		b.SetVec(2*i+1, v)
	}

	var h mat.VecDense
	if err := h.SolveVec(a, b); err != nil {
		return homography{}, ErrDegenerateQuad
	}

	var out homography
	for i := range out {
		out[i] = h.AtVec(i)
		if math.IsNaN(out[i]) || math.IsInf(out[i], 0) {
			return homography{}, ErrDegenerateQuad
		}
	}
	return out, nil
}

// quadArea returns the signed shoelace area of q.
func quadArea(q Quad) float64 {
	var s float64
	for i := range 4 {
		j := (i + 1) % 4
		s += q[i][0]*q[j][1] - q[j][0]*q[i][1]
	}
	return s / 2
}

// fraction converts pixel index i on an axis of n pixels to [0, 1].
func fraction(i float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return i / float64(n-1)
}

// Warp maps the canvas rectangle of src onto the quadrilateral corners and
// resamples. Corners are fractions of the canvas; pixel centers of the first
// and last row and column sit on 0 and 1.
func Warp(src *image.Buffer, corners Quad, interp image.Interpolation) (*image.Buffer, error) {
	if math.Abs(quadArea(corners)) < 1e-9 {
		return nil, ErrDegenerateQuad
	}
	h, err := homographies.Load(corners, func() (homography, error) {
		return solveHomography(corners, IdentityQuad)
	})
	if err != nil {
		return nil, err
	}

	w, ht := src.Bounds()
	sw, sh := float64(max(w-1, 0)), float64(max(ht-1, 0))
	return image.Remap(src, w, ht, interp, image.EdgeClip, image.Transparent, func(x, y float64) (float64, float64, bool) {
		u, v, ok := h.apply(fraction(x, w), fraction(y, ht))
		if !ok {
			return 0, 0, false
		}
		return u * sw, v * sh, true
	})
}
