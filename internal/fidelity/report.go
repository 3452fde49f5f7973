package fidelity

import (
	"fmt"
	"io"
)

// QualityReport is the outcome of scoring one compressed image against its
// original.
type QualityReport struct {
	OriginalPath     string  `json:"original_path"`
	CompressedPath   string  `json:"compressed_path"`
	OriginalBytes    int64   `json:"original_bytes"`
	CompressedBytes  int64   `json:"compressed_bytes"`
	OriginalHash     string  `json:"original_hash,omitempty"`
	CompressedHash   string  `json:"compressed_hash,omitempty"`
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	PSNR             float64 `json:"psnr"`
	SSIM             float64 `json:"ssim"`
	CompressionRatio float64 `json:"compression_ratio"`
}

// Measure checks that both buffers share a shape and computes PSNR and SSIM.
func Measure(original, compressed *PixelBuffer, opts SSIMOptions) (psnr, ssim float64, err error) {
	if !original.SameShape(compressed) {
		return 0, 0, fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, original.Shape(), compressed.Shape())
	}
	ssim, err = SSIM(original, compressed, opts)
	if err != nil {
		return 0, 0, err
	}
	return PSNR(original, compressed), ssim, nil
}

// WriteText prints the three metrics, one per line, to four decimals.
func (r QualityReport) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "PSNR %.4f dB\nSSIM %.4f\nCompressRatio %.4f\n",
		r.PSNR, r.SSIM, r.CompressionRatio)
	return err
}
