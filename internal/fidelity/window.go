package fidelity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// machineEpsilon is the float64 spacing at 1.0.
const machineEpsilon = 0x1p-52

// Window is a normalized, discretized 2-D Gaussian. It is immutable once
// built.
type Window struct {
	size    int
	sigma   float64
	weights *mat.Dense
}

// NewWindow samples a centered Gaussian on a size×size integer grid, zeroes
// entries below machineEpsilon times the peak and renormalizes the rest to
// sum to 1. size must be odd and sigma positive.
func NewWindow(size int, sigma float64) (*Window, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, size)
	}
	if !(sigma > 0) {
		return nil, fmt.Errorf("window sigma must be positive, got %g", sigma)
	}

	half := (size - 1) / 2
	h := make([]float64, size*size)
	for y := -half; y <= half; y++ {
		for x := -half; x <= half; x++ {
			h[(y+half)*size+x+half] = math.Exp(-float64(x*x+y*y) / (2 * sigma * sigma))
		}
	}

	cutoff := machineEpsilon * floats.Max(h)
	for i, v := range h {
		if v < cutoff {
			h[i] = 0
		}
	}
	if sum := floats.Sum(h); sum != 0 {
		floats.Scale(1/sum, h)
	}

	return &Window{size: size, sigma: sigma, weights: mat.NewDense(size, size, h)}, nil
}

func (w *Window) Size() int           { return w.size }
func (w *Window) Sigma() float64      { return w.sigma }
func (w *Window) At(r, c int) float64 { return w.weights.At(r, c) }

// Sum returns the total weight, 1 up to rounding.
func (w *Window) Sum() float64 { return floats.Sum(w.weights.RawMatrix().Data) }

// Matrix returns a copy of the weights.
func (w *Window) Matrix() *mat.Dense { return mat.DenseCopyOf(w.weights) }
