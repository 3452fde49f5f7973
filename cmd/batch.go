package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/AnyUserName/codecq/internal/manifest"
	"github.com/AnyUserName/codecq/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	batchOut     string
	batchProfile string
	batchWorkers int
	batchWindow  int
)

var batchCmd = &cobra.Command{
	Use:   "batch <original_dir> <compressed_dir>",
	Short: "Score every compressed image in a directory against its original",
	Long: `Scans both directories for images (png, jpg, jpeg, webp, gif, bmp, tiff)
and pairs files by relative path without extension, so photos/cat.png is
the original for photos/cat.jpg and photos/cat.webp. Every pair is scored
in parallel and the results are written to a JSON report.`,
	Args: cobra.ExactArgs(2),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "codecq.report.json", "report file")
	batchCmd.Flags().StringVarP(&batchProfile, "profile", "p", "reference", "SSIM parameter profile")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	batchCmd.Flags().IntVar(&batchWindow, "window", 0, "SSIM window size, odd (0 = profile default)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	start := time.Now()

	absOrig, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve original path: %w", err)
	}
	absComp, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("resolve compressed path: %w", err)
	}
	for _, dir := range []string{absOrig, absComp} {
		info, err := os.Stat(dir)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("%s: not a directory", dir)
		}
	}

	prof := resolveProfile(batchProfile, batchWindow, 0, 0)

	logVerbose("originals:  %s", absOrig)
	logVerbose("compressed: %s", absComp)
	logVerbose("profile:    %s (window=%d, k1=%g, k2=%g)", prof.Name, prof.WindowSize, prof.K1, prof.K2)

	p := pipeline.New(pipeline.Config{
		OriginalDir:   absOrig,
		CompressedDir: absComp,
		Profile:       prof,
		Workers:       batchWorkers,
		Verbose:       verbose,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if err := manifest.WriteJSON(m, batchOut); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	printBatchReport(m, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║              codecq batch complete               ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	printSummary(m)
	fmt.Printf("  Time:            %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:         %d\n", m.BuildInfo.Workers)
	}
	fmt.Println()

	// Ten lowest-SSIM pairs.
	if len(m.Pairs) > 0 {
		type scored struct {
			key string
			e   manifest.Entry
		}
		items := make([]scored, 0, len(m.Pairs))
		for k, e := range m.Pairs {
			items = append(items, scored{k, e})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].e.SSIM != items[j].e.SSIM {
				return items[i].e.SSIM < items[j].e.SSIM
			}
			return items[i].key < items[j].key
		})
		n := len(items)
		if n > 10 {
			n = 10
		}
		fmt.Printf("  Worst %d by SSIM:\n", n)
		for _, it := range items[:n] {
			fmt.Printf("    %-40s SSIM %.4f  PSNR %7.2f dB  ratio %6.2f\n",
				truncKey(it.key, 40), it.e.SSIM, it.e.PSNR, it.e.CompressionRatio)
		}
		fmt.Println()
	}

	fmt.Printf("  Report:          %s\n", batchOut)
	fmt.Println()
}

// printSummary prints the aggregate block shared by batch and stats.
func printSummary(m *manifest.Manifest) {
	s := m.Stats
	fmt.Printf("  Pairs:           %d\n", s.TotalPairs)
	if s.Failed > 0 {
		fmt.Printf("  Failed:          %d\n", s.Failed)
	}
	if len(m.Unmatched) > 0 {
		fmt.Printf("  Unmatched:       %d (no original)\n", len(m.Unmatched))
	}
	if s.IdenticalCopies > 0 {
		fmt.Printf("  Identical:       %d (byte-for-byte copies)\n", s.IdenticalCopies)
	}
	fmt.Printf("  Original size:   %s\n", formatBytes(s.TotalOriginalBytes))
	fmt.Printf("  Compressed size: %s\n", formatBytes(s.TotalCompressedBytes))
	fmt.Printf("  Overall ratio:   %.4f\n", s.OverallRatio)
	fmt.Printf("  Mean PSNR:       %.4f dB\n", s.MeanPSNR)
	fmt.Printf("  Mean SSIM:       %.4f (min %.4f)\n", s.MeanSSIM, s.MinSSIM)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
