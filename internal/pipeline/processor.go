package pipeline

import (
	"fmt"

	"github.com/AnyUserName/codecq/internal/fidelity"
	"github.com/AnyUserName/codecq/internal/hasher"
	"github.com/AnyUserName/codecq/internal/loader"
	"github.com/AnyUserName/codecq/internal/manifest"
)

// hashLen is the number of hex chars kept from xxhash64.
const hashLen = 16

// Compare loads both images as grayscale, checks they share a shape and
// scores them. It is the single-pair entry point used by the compare
// command and by every batch worker.
func Compare(originalPath, compressedPath string, opts fidelity.SSIMOptions) (fidelity.QualityReport, error) {
	report := fidelity.QualityReport{
		OriginalPath:   originalPath,
		CompressedPath: compressedPath,
	}

	var err error
	if report.OriginalBytes, err = fidelity.FileSize(originalPath); err != nil {
		return report, err
	}
	if report.CompressedBytes, err = fidelity.FileSize(compressedPath); err != nil {
		return report, err
	}
	if report.CompressionRatio, err = fidelity.Ratio(report.OriginalBytes, report.CompressedBytes); err != nil {
		return report, fmt.Errorf("%s: %w", compressedPath, err)
	}

	orig, err := loader.LoadGray(originalPath)
	if err != nil {
		return report, err
	}
	comp, err := loader.LoadGray(compressedPath)
	if err != nil {
		return report, err
	}

	report.Width, report.Height = orig.Cols, orig.Rows
	report.PSNR, report.SSIM, err = fidelity.Measure(orig, comp, opts)
	if err != nil {
		return report, fmt.Errorf("compare %s with %s: %w", originalPath, compressedPath, err)
	}

	if report.OriginalHash, err = hasher.FileHash(originalPath, hashLen); err != nil {
		return report, fmt.Errorf("hash %s: %w", originalPath, err)
	}
	if report.CompressedHash, err = hasher.FileHash(compressedPath, hashLen); err != nil {
		return report, fmt.Errorf("hash %s: %w", compressedPath, err)
	}
	return report, nil
}

// processResult holds the outcome of scoring a single pair.
type processResult struct {
	key   string
	entry manifest.Entry
	err   error
}

// processPair scores one pair and converts the report into a manifest entry.
func processPair(p Pair, opts fidelity.SSIMOptions) processResult {
	result := processResult{key: p.Compressed.RelPath}

	r, err := Compare(p.Original.AbsPath, p.Compressed.AbsPath, opts)
	if err != nil {
		result.err = fmt.Errorf("%s: %w", p.Compressed.RelPath, err)
		return result
	}

	result.entry = manifest.Entry{
		Original: manifest.FileInfo{
			Path: p.Original.RelPath,
			Size: r.OriginalBytes,
			Hash: r.OriginalHash,
		},
		Compressed: manifest.FileInfo{
			Path: p.Compressed.RelPath,
			Size: r.CompressedBytes,
			Hash: r.CompressedHash,
		},
		Width:            r.Width,
		Height:           r.Height,
		PSNR:             r.PSNR,
		SSIM:             r.SSIM,
		CompressionRatio: r.CompressionRatio,
	}
	return result
}
