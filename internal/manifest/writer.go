package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// New creates an empty manifest with defaults.
func New(profileName string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
		Pairs:       make(map[string]Entry),
	}
}

// ComputeStats recalculates aggregate statistics from pairs. Failed is
// carried over since failed pairs have no entry.
func (m *Manifest) ComputeStats() {
	s := Stats{Failed: m.Stats.Failed, TotalPairs: len(m.Pairs)}
	if len(m.Pairs) == 0 {
		m.Stats = s
		return
	}
	psnr := make([]float64, 0, len(m.Pairs))
	ssim := make([]float64, 0, len(m.Pairs))
	for _, e := range m.Pairs {
		s.TotalOriginalBytes += e.Original.Size
		s.TotalCompressedBytes += e.Compressed.Size
		if e.Original.Hash != "" && e.Original.Hash == e.Compressed.Hash {
			s.IdenticalCopies++
		}
		psnr = append(psnr, e.PSNR)
		ssim = append(ssim, e.SSIM)
	}
	if s.TotalCompressedBytes > 0 {
		s.OverallRatio = float64(s.TotalOriginalBytes) / float64(s.TotalCompressedBytes)
	}
	s.MeanPSNR = stat.Mean(psnr, nil)
	s.MeanSSIM = stat.Mean(ssim, nil)
	s.MinSSIM = floats.Min(ssim)
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest written by WriteJSON.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
