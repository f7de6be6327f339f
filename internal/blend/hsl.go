package blend

// Non-separable blend modes (Hue, Saturation, Color, Luminosity) after
// W3C Compositing and Blending Level 1, section 8. They treat a pixel as one
// RGB triple with components in [0, 1].

type rgb = [3]float64

// lum returns the BT.601 luma of c.
func lum(c rgb) float64 {
	return 0.30*c[0] + 0.59*c[1] + 0.11*c[2]
}

// sat returns max(c) - min(c).
func sat(c rgb) float64 {
	return max(c[0], c[1], c[2]) - min(c[0], c[1], c[2])
}

// clipColor pulls out-of-range components toward the luma of c, keeping
// the luma itself.
func clipColor(c rgb) rgb {
	l := lum(c)
	lo := min(c[0], c[1], c[2])
	hi := max(c[0], c[1], c[2])
	if lo < 0 {
		for i := range c {
			c[i] = l + (c[i]-l)*l/(l-lo)
		}
	}
	if hi > 1 {
		for i := range c {
			c[i] = l + (c[i]-l)*(1-l)/(hi-l)
		}
	}
	return c
}

// setLum shifts c to luma l.
func setLum(c rgb, l float64) rgb {
	d := l - lum(c)
	return clipColor(rgb{c[0] + d, c[1] + d, c[2] + d})
}

// setSat rescales c so that max - min equals s. Gray inputs stay unchanged.
func setSat(c rgb, s float64) rgb {
	lo, mid, hi := order(c)
	if c[hi] <= c[lo] {
		return c
	}
	var out rgb
	out[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
	out[hi] = s
	return out
}

// order returns the indices of the smallest, middle and largest component.
func order(c rgb) (lo, mid, hi int) {
	lo, mid, hi = 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	return lo, mid, hi
}

// nonSeparable blends source s over backdrop b with one of the four
// non-separable modes. Other modes return s.
func nonSeparable(m Mode, b, s rgb) rgb {
	switch m {
	case Hue:
		return setLum(setSat(s, sat(b)), lum(b))
	case Saturation:
		return setLum(setSat(b, sat(s)), lum(b))
	case Color:
		return setLum(s, lum(b))
	case Luminosity:
		return setLum(b, lum(s))
	}
	return s
}
