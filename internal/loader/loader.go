// Package loader decodes image files into sample buffers for the metric
// engine.
package loader

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/AnyUserName/codecq/internal/fidelity"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnreadable marks a file that exists but could not be decoded.
var ErrUnreadable = errors.New("unreadable image")

// Open decodes path, applying EXIF orientation. A missing file yields an
// error matching fs.ErrNotExist; a decode failure matches ErrUnreadable.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load image: %w", err)
		}
		return nil, fmt.Errorf("%w %s: %w", ErrUnreadable, path, err)
	}
	return img, nil
}

// LoadGray decodes path and converts it to single-channel luma.
func LoadGray(path string) (*fidelity.PixelBuffer, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return Gray(img), nil
}

// Gray converts img to BT.601 luma (0.299R + 0.587G + 0.114B, rounded).
func Gray(img image.Image) *fidelity.PixelBuffer {
	if g, ok := img.(*image.Gray); ok {
		return fidelity.FromGray(g)
	}
	lum := imaging.Grayscale(img)
	b := lum.Bounds()
	p := fidelity.NewPixelBuffer(b.Dy(), b.Dx(), 1)
	for y := 0; y < p.Rows; y++ {
		off := y * lum.Stride
		for x := 0; x < p.Cols; x++ {
			p.Pix[y*p.Cols+x] = float64(lum.Pix[off+x*4])
		}
	}
	return p
}

// RGB returns the three color channels of img without conversion.
func RGB(img image.Image) *fidelity.PixelBuffer {
	src := imaging.Clone(img)
	b := src.Bounds()
	p := fidelity.NewPixelBuffer(b.Dy(), b.Dx(), 3)
	for y := 0; y < p.Rows; y++ {
		off := y * src.Stride
		for x := 0; x < p.Cols; x++ {
			i := off + x*4
			p.Set(y, x, 0, float64(src.Pix[i]))
			p.Set(y, x, 1, float64(src.Pix[i+1]))
			p.Set(y, x, 2, float64(src.Pix[i+2]))
		}
	}
	return p
}
