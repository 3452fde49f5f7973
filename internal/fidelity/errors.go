package fidelity

import "errors"

// Errors reported by the metric engine. Callers match them with errors.Is;
// the returned errors carry the offending shapes or paths as context.
var (
	ErrShapeMismatch = errors.New("input images must have the same dimensions")
	ErrChannelCount  = errors.New("SSIM requires single-channel images")
	ErrInvalidWindow = errors.New("window size must be a positive odd number")
	ErrImageTooSmall = errors.New("image is smaller than the SSIM window")
	ErrEmptyFile     = errors.New("compressed file is empty")
)
