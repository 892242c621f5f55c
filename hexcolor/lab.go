package hexcolor

import "math"

// Lab is a CIE LAB coordinate: lightness (0-100) plus the two opponent axes.
type Lab struct {
	L float64
	A float64
	B float64
}

// DeltaE computes the CIE76 perceptual difference between two LAB coordinates:
// plain Euclidean distance, non-negative, symmetric, zero iff identical.
// Not CIE94 or CIEDE2000: every equivalence threshold in the pipeline assumes
// the plain CIE76 scale.
func DeltaE(x, y Lab) float64 {
	dl := x.L - y.L
	da := x.A - y.A
	db := x.B - y.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
