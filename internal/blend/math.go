// Package blend provides byte-domain compositing math for projector.
//
// Two families live here. The straight-alpha helpers (MulChannel,
// MaxAlpha, MultiplyRow) back the exact overlap blender and round like
// round((a/255)*(b/255)*255). The premultiplied operators (Op, GetFunc,
// CompositeRow) back the display surface and use the cheaper div255
// approximation.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// div255 divides x by 255 using fast shift approximation.
//
// Formula: (x + 255) >> 8
//
// The maximum error is +1 for some input values. For inputs up to
// 255*255 the result stays within [0, 255].
func div255(x uint32) uint32 {
	return (x + 255) >> 8
}

// div255Round divides x by 255 rounding to nearest.
//
// For x = a*b with a, b in [0, 255] the quotient is never exactly half
// way between two integers, so this equals math.Round(float64(x) / 255).
func div255Round(x uint32) uint32 {
	return (x + 127) / 255
}

// MulChannel multiplies two straight-alpha channel values as normalized
// fractions and rescales to a byte: round((a/255)*(b/255)*255).
//
// The result never exceeds min(a, b).
func MulChannel(a, b byte) byte {
	return byte(div255Round(uint32(a) * uint32(b)))
}

// MaxAlpha returns the larger of two alpha values.
func MaxAlpha(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}

// Premultiply converts a straight-alpha color channel to premultiplied form.
func Premultiply(c, a byte) byte {
	if a == 255 {
		return c
	}
	return byte(div255Round(uint32(c) * uint32(a)))
}
