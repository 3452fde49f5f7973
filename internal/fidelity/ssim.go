package fidelity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// WindowSigma is the Gaussian spread of the SSIM window. It does not follow
// WindowSize: a larger window only adds near-zero border weights.
const WindowSigma = 0.5

// SSIMOptions parameterizes SSIM.
type SSIMOptions struct {
	K1           float64
	K2           float64
	WindowSize   int
	DynamicRange float64 // L, 255 for 8-bit samples
}

// DefaultSSIMOptions returns k1=0.01, k2=0.04, an 11×11 window and L=255.
func DefaultSSIMOptions() SSIMOptions {
	return SSIMOptions{K1: 0.01, K2: 0.04, WindowSize: 11, DynamicRange: 255}
}

// SSIM returns the mean structural similarity of two single-channel
// buffers; 1 means identical.
func SSIM(original, compressed *PixelBuffer, opts SSIMOptions) (float64, error) {
	m, err := SSIMMap(original, compressed, opts)
	if err != nil {
		return 0, err
	}
	return stat.Mean(m.RawMatrix().Data, nil), nil
}

// SSIMMap returns the per-neighborhood SSIM index over the valid
// convolution grid.
func SSIMMap(original, compressed *PixelBuffer, opts SSIMOptions) (*mat.Dense, error) {
	if !original.SameShape(compressed) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, original.Shape(), compressed.Shape())
	}
	if original.Channels > 1 {
		return nil, fmt.Errorf("%w: got %d channels", ErrChannelCount, original.Channels)
	}
	win, err := NewWindow(opts.WindowSize, WindowSigma)
	if err != nil {
		return nil, err
	}
	if original.Rows < win.Size() || original.Cols < win.Size() {
		return nil, fmt.Errorf("%w: %s image, %d window", ErrImageTooSmall, original.Shape(), win.Size())
	}

	c1 := (opts.K1 * opts.DynamicRange) * (opts.K1 * opts.DynamicRange)
	c2 := (opts.K2 * opts.DynamicRange) * (opts.K2 * opts.DynamicRange)

	a := original.Plane()
	b := compressed.Plane()
	var aa, bb, ab mat.Dense
	aa.MulElem(a, a)
	bb.MulElem(b, b)
	ab.MulElem(a, b)

	k := win.weights
	mu1, err := Convolve2DValid(a, k)
	if err != nil {
		return nil, err
	}
	mu2, err := Convolve2DValid(b, k)
	if err != nil {
		return nil, err
	}
	e11, err := Convolve2DValid(&aa, k)
	if err != nil {
		return nil, err
	}
	e22, err := Convolve2DValid(&bb, k)
	if err != nil {
		return nil, err
	}
	e12, err := Convolve2DValid(&ab, k)
	if err != nil {
		return nil, err
	}

	var mu1Sq, mu2Sq, mu1Mu2 mat.Dense
	mu1Sq.MulElem(mu1, mu1)
	mu2Sq.MulElem(mu2, mu2)
	mu1Mu2.MulElem(mu1, mu2)

	var sigma1Sq, sigma2Sq, sigma12 mat.Dense
	sigma1Sq.Sub(e11, &mu1Sq)
	sigma2Sq.Sub(e22, &mu2Sq)
	sigma12.Sub(e12, &mu1Mu2)

	var out mat.Dense
	out.Apply(func(i, j int, m12 float64) float64 {
		num := (2*m12 + c1) * (2*sigma12.At(i, j) + c2)
		den := (mu1Sq.At(i, j) + mu2Sq.At(i, j) + c1) * (sigma1Sq.At(i, j) + sigma2Sq.At(i, j) + c2)
		return num / den
	}, &mu1Mu2)
	return &out, nil
}
