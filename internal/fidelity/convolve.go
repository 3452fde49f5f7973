package fidelity

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// tap is one non-zero kernel weight placed at its offset inside the
// output window, after flipping.
type tap struct {
	dy, dx int
	w      float64
}

// Convolve2DValid computes the 2-D convolution of src with kernel, keeping
// only positions where the kernel fully overlaps src. The kernel is flipped
// along both axes (convolution, not correlation) and the result has
// (rows-kr+1)×(cols-kc+1) elements.
func Convolve2DValid(src, kernel mat.Matrix) (*mat.Dense, error) {
	sr, sc := src.Dims()
	kr, kc := kernel.Dims()
	outR, outC := sr-kr+1, sc-kc+1
	if outR <= 0 || outC <= 0 {
		return nil, fmt.Errorf("%w: %dx%d input, %dx%d kernel", ErrImageTooSmall, sr, sc, kr, kc)
	}

	// Zero weights are common after the window cutoff; skip them.
	taps := make([]tap, 0, kr*kc)
	for m := 0; m < kr; m++ {
		for n := 0; n < kc; n++ {
			if w := kernel.At(kr-1-m, kc-1-n); w != 0 {
				taps = append(taps, tap{dy: m, dx: n, w: w})
			}
		}
	}

	in := rawOf(src)
	out := mat.NewDense(outR, outC, nil)
	dst := out.RawMatrix()
	for i := 0; i < outR; i++ {
		row := dst.Data[i*dst.Stride : i*dst.Stride+outC]
		for _, t := range taps {
			base := (i+t.dy)*in.Stride + t.dx
			seg := in.Data[base : base+outC]
			for j, v := range seg {
				row[j] += t.w * v
			}
		}
	}
	return out, nil
}

func rawOf(m mat.Matrix) blas64.General {
	if r, ok := m.(mat.RawMatrixer); ok {
		return r.RawMatrix()
	}
	return mat.DenseCopyOf(m).RawMatrix()
}
