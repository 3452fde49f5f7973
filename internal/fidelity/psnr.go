package fidelity

import "math"

const (
	// MaxPSNR is reported when two buffers are numerically identical.
	MaxPSNR = 100.0

	// maxSample is the peak 8-bit sample value, independent of the
	// buffer's actual range.
	maxSample = 255.0

	zeroMSE = 1e-10
)

// MSE returns the mean squared difference over every sample of two
// equal-shaped buffers. Empty buffers have zero error.
func MSE(original, compressed *PixelBuffer) float64 {
	if len(original.Pix) == 0 {
		return 0
	}
	var sum float64
	for i, a := range original.Pix {
		d := a - compressed.Pix[i]
		sum += d * d
	}
	return sum / float64(len(original.Pix))
}

// PSNR returns the peak signal-to-noise ratio in dB. Shapes are not checked
// here; Measure validates the pair once before computing every metric.
// An MSE below 1e-10 saturates at MaxPSNR.
func PSNR(original, compressed *PixelBuffer) float64 {
	mse := MSE(original, compressed)
	if mse < zeroMSE {
		return MaxPSNR
	}
	return 20 * math.Log10(maxSample/math.Sqrt(mse))
}
