package fidelity

import (
	"fmt"
	"os"
)

// FileSize returns the size on disk of path in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s: is a directory", path)
	}
	return info.Size(), nil
}

// Ratio divides the original size by the compressed size.
func Ratio(originalBytes, compressedBytes int64) (float64, error) {
	if compressedBytes == 0 {
		return 0, ErrEmptyFile
	}
	return float64(originalBytes) / float64(compressedBytes), nil
}

// CompressionRatio is size(originalPath) / size(compressedPath). A missing
// path yields an error matching fs.ErrNotExist that names the path.
func CompressionRatio(originalPath, compressedPath string) (float64, error) {
	orig, err := FileSize(originalPath)
	if err != nil {
		return 0, fmt.Errorf("compression ratio: %w", err)
	}
	comp, err := FileSize(compressedPath)
	if err != nil {
		return 0, fmt.Errorf("compression ratio: %w", err)
	}
	r, err := Ratio(orig, comp)
	if err != nil {
		return 0, fmt.Errorf("compression ratio: %s: %w", compressedPath, err)
	}
	return r, nil
}
