package manifest

// Manifest is the top-level output of a batch comparison.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Pairs       map[string]Entry `json:"pairs"` // keyed by compressed relpath
	Unmatched   []string         `json:"unmatched,omitempty"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures run parameters for diagnostics.
type BuildInfo struct {
	Workers    int     `json:"workers"`
	WindowSize int     `json:"window_size"`
	K1         float64 `json:"k1"`
	K2         float64 `json:"k2"`
}

// Entry is the score of one compressed file against its original.
type Entry struct {
	Original         FileInfo `json:"original"`
	Compressed       FileInfo `json:"compressed"`
	Width            int      `json:"width"`
	Height           int      `json:"height"`
	PSNR             float64  `json:"psnr"`
	SSIM             float64  `json:"ssim"`
	CompressionRatio float64  `json:"compression_ratio"`
}

// FileInfo identifies one input file.
type FileInfo struct {
	Path string `json:"path"` // relative to the scanned directory
	Size int64  `json:"size"`
	Hash string `json:"hash"` // first 16 hex chars of xxhash64
}

// Stats aggregates batch metrics.
type Stats struct {
	TotalPairs           int     `json:"total_pairs"`
	Failed               int     `json:"failed,omitempty"`
	IdenticalCopies      int     `json:"identical_copies,omitempty"`
	TotalOriginalBytes   int64   `json:"total_original_bytes"`
	TotalCompressedBytes int64   `json:"total_compressed_bytes"`
	OverallRatio         float64 `json:"overall_ratio"`
	MeanPSNR             float64 `json:"mean_psnr"`
	MeanSSIM             float64 `json:"mean_ssim"`
	MinSSIM              float64 `json:"min_ssim"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
