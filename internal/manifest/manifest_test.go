package manifest

import (
	"encoding/json"
	"math"
	"path/filepath"
	"testing"
)

func TestManifestRoundtrip(t *testing.T) {
	m := New("test-profile")
	m.BuildInfo = &BuildInfo{Workers: 4, WindowSize: 11, K1: 0.01, K2: 0.04}
	m.Pairs["photos/cat.jpg"] = Entry{
		Original:         FileInfo{Path: "photos/cat.png", Size: 2000, Hash: "abcd1234abcd1234"},
		Compressed:       FileInfo{Path: "photos/cat.jpg", Size: 500, Hash: "0123456789abcdef"},
		Width:            64,
		Height:           48,
		PSNR:             38.5,
		SSIM:             0.97,
		CompressionRatio: 4,
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "codecq.report.json")
	if err := WriteJSON(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	m2, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if m2.Version != SupportedManifestVersion {
		t.Errorf("version: got %d, want %d", m2.Version, SupportedManifestVersion)
	}
	if m2.Profile != "test-profile" {
		t.Errorf("profile: got %q", m2.Profile)
	}
	if m2.BuildInfo == nil {
		t.Fatal("build_info missing")
	}
	if m2.BuildInfo.Workers != 4 || m2.BuildInfo.WindowSize != 11 {
		t.Errorf("build_info: got %+v", *m2.BuildInfo)
	}

	e, ok := m2.Pairs["photos/cat.jpg"]
	if !ok {
		t.Fatal("pair photos/cat.jpg missing")
	}
	if e.Original.Path != "photos/cat.png" {
		t.Errorf("original path: got %q", e.Original.Path)
	}
	if e.CompressionRatio != 4 {
		t.Errorf("ratio: got %v", e.CompressionRatio)
	}

	if m2.Stats.TotalPairs != 1 {
		t.Errorf("total_pairs: got %d", m2.Stats.TotalPairs)
	}
	if m2.Stats.OverallRatio != 4 {
		t.Errorf("overall_ratio: got %v", m2.Stats.OverallRatio)
	}
}

func TestComputeStats(t *testing.T) {
	m := New("stats")
	m.Stats.Failed = 2
	m.Pairs["a"] = Entry{
		Original:   FileInfo{Size: 3000, Hash: "aa"},
		Compressed: FileInfo{Size: 1000, Hash: "bb"},
		PSNR:       30, SSIM: 0.9,
	}
	m.Pairs["b"] = Entry{
		Original:   FileInfo{Size: 1000, Hash: "cc"},
		Compressed: FileInfo{Size: 1000, Hash: "cc"},
		PSNR:       100, SSIM: 1,
	}
	m.ComputeStats()

	s := m.Stats
	if s.TotalPairs != 2 || s.Failed != 2 || s.IdenticalCopies != 1 {
		t.Errorf("counts: got %+v", s)
	}
	if s.OverallRatio != 2 {
		t.Errorf("overall ratio: got %v", s.OverallRatio)
	}
	if s.MeanPSNR != 65 {
		t.Errorf("mean psnr: got %v", s.MeanPSNR)
	}
	if math.Abs(s.MeanSSIM-0.95) > 1e-12 || s.MinSSIM != 0.9 {
		t.Errorf("ssim stats: mean=%v min=%v", s.MeanSSIM, s.MinSSIM)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	m := New("empty")
	m.ComputeStats()
	if m.Stats.TotalPairs != 0 || m.Stats.MeanSSIM != 0 {
		t.Errorf("empty stats: got %+v", m.Stats)
	}
	// NaN would break json.Marshal.
	if _, err := json.Marshal(m); err != nil {
		t.Errorf("marshal empty manifest: %v", err)
	}
}

func TestManifestIgnoresUnknownFields(t *testing.T) {
	// Simulate a future manifest with extra fields.
	raw := `{
		"version": 1,
		"generated_at": "2025-01-01T00:00:00Z",
		"profile": "test",
		"future_field": "should be ignored",
		"build_info": { "workers": 8, "window_size": 11, "new_flag": true },
		"pairs": {},
		"stats": { "total_pairs": 0, "new_stat": 42 }
	}`

	var m Manifest
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if m.Version != 1 {
		t.Errorf("version: got %d", m.Version)
	}
	if m.BuildInfo == nil || m.BuildInfo.Workers != 8 {
		t.Error("build_info not parsed correctly")
	}
}
