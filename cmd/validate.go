package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/AnyUserName/codecq/internal/hasher"
	"github.com/AnyUserName/codecq/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report> <original_dir> <compressed_dir>",
	Short: "Check that a batch report still matches the files on disk",
	Args:  cobra.ExactArgs(3),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	m, err := manifest.ReadJSON(args[0])
	if err != nil {
		return err
	}

	errors := validateManifest(m, args[1], args[2])

	if len(errors) == 0 {
		fmt.Println("  ✓ Report is valid")
		fmt.Printf("  ✓ %d pairs — all files present and unchanged\n", m.Stats.TotalPairs)
		return nil
	}

	fmt.Printf("  ✗ Report has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, origDir, compDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported report version: %d", m.Version))
	}

	for key, e := range m.Pairs {
		if e.Width <= 0 || e.Height <= 0 {
			errs = append(errs, fmt.Sprintf("pair %q: invalid dimensions %dx%d", key, e.Width, e.Height))
		}
		if e.SSIM < -1 || e.SSIM > 1+1e-9 || math.IsNaN(e.SSIM) {
			errs = append(errs, fmt.Sprintf("pair %q: SSIM %.4f out of range", key, e.SSIM))
		}
		if e.PSNR <= 0 || e.PSNR > 100 {
			errs = append(errs, fmt.Sprintf("pair %q: PSNR %.4f out of range", key, e.PSNR))
		}
		errs = append(errs, checkFile(key, "original", origDir, e.Original)...)
		errs = append(errs, checkFile(key, "compressed", compDir, e.Compressed)...)
	}

	// Verify stats consistency.
	if m.Stats.TotalPairs != len(m.Pairs) {
		errs = append(errs, fmt.Sprintf("stats.total_pairs mismatch: %d != %d", m.Stats.TotalPairs, len(m.Pairs)))
	}

	return errs
}

func checkFile(key, role, baseDir string, f manifest.FileInfo) []string {
	if f.Path == "" {
		return []string{fmt.Sprintf("pair %q: missing %s path", key, role)}
	}
	fullPath := filepath.Join(baseDir, filepath.FromSlash(f.Path))
	info, err := os.Stat(fullPath)
	if err != nil {
		return []string{fmt.Sprintf("pair %q: %s not found: %s", key, role, f.Path)}
	}
	if info.Size() != f.Size {
		return []string{fmt.Sprintf("pair %q: %s size mismatch: report=%d, disk=%d", key, role, f.Size, info.Size())}
	}
	if f.Hash == "" {
		return nil
	}
	h, err := hasher.FileHash(fullPath, len(f.Hash))
	if err != nil {
		return []string{fmt.Sprintf("pair %q: hash %s: %v", key, f.Path, err)}
	}
	if h != f.Hash {
		return []string{fmt.Sprintf("pair %q: %s content changed: report=%s, disk=%s", key, role, f.Hash, h)}
	}
	return nil
}
