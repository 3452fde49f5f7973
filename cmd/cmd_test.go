package cmd

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/codecq/internal/manifest"
	"github.com/AnyUserName/codecq/internal/pipeline"
	"github.com/AnyUserName/codecq/internal/profile"
)

func writeGray(t *testing.T, path string, w, h int, v uint8) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestCompareCommand_Output(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writeGray(t, a, 64, 64, 128)
	writeGray(t, b, 64, 64, 128)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"compare", a, b})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("compare: %v", err)
	}

	want := "PSNR 100.0000 dB\nSSIM 1.0000\nCompressRatio 1.0000\n"
	if out.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestTablesCommand_Output(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"tables"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("tables: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 8+7 {
		t.Fatalf("line count: got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "    5792, ") {
		t.Errorf("first DCT row: %q", lines[0])
	}
	if lines[8] != "{" || lines[14] != "}" {
		t.Errorf("yuv delimiters: %q ... %q", lines[8], lines[14])
	}
}

func TestResolveProfile_Overrides(t *testing.T) {
	p := resolveProfile("wang2004", 7, 0, 0.05)
	if p.WindowSize != 7 || p.K2 != 0.05 || p.K1 != 0.01 {
		t.Errorf("overrides not applied: %+v", p)
	}
}

func TestValidateManifest(t *testing.T) {
	orig := t.TempDir()
	comp := t.TempDir()
	writeGray(t, filepath.Join(orig, "x.png"), 16, 16, 10)
	writeGray(t, filepath.Join(comp, "x.png"), 16, 16, 12)

	m, err := pipeline.New(pipeline.Config{
		OriginalDir:   orig,
		CompressedDir: comp,
		Profile:       profile.Get("small-window"),
		Workers:       1,
	}).Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if errs := validateManifest(m, orig, comp); len(errs) != 0 {
		t.Fatalf("fresh report invalid: %v", errs)
	}

	// Rewrite the compressed file with different content.
	writeGray(t, filepath.Join(comp, "x.png"), 16, 16, 200)
	errs := validateManifest(m, orig, comp)
	if len(errs) == 0 {
		t.Fatal("stale report passed validation")
	}

	m.Version = 99
	m.Stats.TotalPairs = 5
	if errs := validateManifest(m, orig, comp); len(errs) < 3 {
		t.Errorf("expected version, stats and content errors, got %v", errs)
	}
}

func TestValidateManifest_MissingFile(t *testing.T) {
	m := manifest.New("reference")
	m.Pairs["gone.jpg"] = manifest.Entry{
		Original:   manifest.FileInfo{Path: "gone.png", Size: 1},
		Compressed: manifest.FileInfo{Path: "gone.jpg", Size: 1},
		Width:      8, Height: 8, PSNR: 30, SSIM: 0.9,
	}
	m.ComputeStats()
	errs := validateManifest(m, t.TempDir(), t.TempDir())
	if len(errs) != 2 {
		t.Errorf("expected two not-found errors, got %v", errs)
	}
}
