package fidelity

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/mat"
)

// PixelBuffer holds intensity samples widened to float64. Samples are stored
// row-major with channels interleaved, so a single-channel buffer is a plain
// rows×cols plane.
type PixelBuffer struct {
	Rows     int
	Cols     int
	Channels int
	Pix      []float64
}

// NewPixelBuffer allocates a zeroed buffer.
func NewPixelBuffer(rows, cols, channels int) *PixelBuffer {
	if channels < 1 {
		channels = 1
	}
	return &PixelBuffer{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Pix:      make([]float64, rows*cols*channels),
	}
}

// FromGray widens an 8-bit grayscale image into a single-channel buffer.
func FromGray(img *image.Gray) *PixelBuffer {
	b := img.Bounds()
	p := NewPixelBuffer(b.Dy(), b.Dx(), 1)
	for y := 0; y < p.Rows; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+p.Cols]
		dst := p.Pix[y*p.Cols : (y+1)*p.Cols]
		for x, v := range row {
			dst[x] = float64(v)
		}
	}
	return p
}

// Fill sets every sample to v.
func (p *PixelBuffer) Fill(v float64) *PixelBuffer {
	for i := range p.Pix {
		p.Pix[i] = v
	}
	return p
}

func (p *PixelBuffer) index(row, col, ch int) int {
	return (row*p.Cols+col)*p.Channels + ch
}

// At returns the sample at (row, col) on channel ch.
func (p *PixelBuffer) At(row, col, ch int) float64 { return p.Pix[p.index(row, col, ch)] }

// Set stores v at (row, col) on channel ch.
func (p *PixelBuffer) Set(row, col, ch int, v float64) { p.Pix[p.index(row, col, ch)] = v }

// SameShape reports whether both buffers agree on rows, cols and channels.
func (p *PixelBuffer) SameShape(o *PixelBuffer) bool {
	return p.Rows == o.Rows && p.Cols == o.Cols && p.Channels == o.Channels
}

// Shape formats the buffer dimensions the way they are reported in errors.
func (p *PixelBuffer) Shape() string {
	if p.Channels == 1 {
		return fmt.Sprintf("%dx%d", p.Rows, p.Cols)
	}
	return fmt.Sprintf("%dx%dx%d", p.Rows, p.Cols, p.Channels)
}

// Plane returns the samples of a single-channel buffer as a matrix backed
// by Pix. The result must be treated as read-only.
func (p *PixelBuffer) Plane() *mat.Dense {
	return mat.NewDense(p.Rows, p.Cols, p.Pix)
}
