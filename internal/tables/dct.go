// Package tables generates the constant tables a block codec embeds: the
// fixed-point 8-point DCT-II basis and partial RGB→YUV conversion tables.
package tables

import "math"

const (
	// BlockSize is the DCT block edge.
	BlockSize = 8

	// FixedPointBits is the fractional precision of DCT coefficients.
	FixedPointBits = 13
)

func dctScale(x int) float64 {
	if x == 0 {
		return math.Sqrt(0.5)
	}
	return 1
}

// DCTCoefficient returns e(x)·cos((2u+1)xπ/16) scaled by 2^13 and
// truncated toward zero.
func DCTCoefficient(x, u int) int32 {
	f := dctScale(x) * math.Cos(float64((2*u+1)*x)*math.Pi/16)
	return int32(f * (1 << FixedPointBits))
}

// DCTBasis returns the basis matrix indexed [x][u].
func DCTBasis() [BlockSize][BlockSize]int32 {
	var m [BlockSize][BlockSize]int32
	for x := 0; x < BlockSize; x++ {
		for u := 0; u < BlockSize; u++ {
			m[x][u] = DCTCoefficient(x, u)
		}
	}
	return m
}
