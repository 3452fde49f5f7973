package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/codecq/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <report_or_dir>",
	Short: "Display statistics for a batch report",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for the report inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, "codecq.report.json")
	}

	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}

	printStats(m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Report version:  %d\n", m.Version)
	fmt.Printf("  Generated:       %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:         %s\n", m.Profile)
	if m.BuildInfo != nil {
		fmt.Printf("  SSIM window:     %d (k1=%g, k2=%g)\n", m.BuildInfo.WindowSize, m.BuildInfo.K1, m.BuildInfo.K2)
	}
	fmt.Println()

	printSummary(m)
	fmt.Println()

	// Per-format breakdown of the compressed side.
	type agg struct {
		count int
		ssim  float64
		ratio float64
	}
	byExt := map[string]agg{}
	for _, e := range m.Pairs {
		ext := filepath.Ext(e.Compressed.Path)
		a := byExt[ext]
		a.count++
		a.ssim += e.SSIM
		a.ratio += e.CompressionRatio
		byExt[ext] = a
	}
	exts := make([]string, 0, len(byExt))
	for ext := range byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	fmt.Println("  Format breakdown:")
	for _, ext := range exts {
		a := byExt[ext]
		fmt.Printf("    %-6s  %4d pairs  mean SSIM %.4f  mean ratio %.2f\n",
			ext, a.count, a.ssim/float64(a.count), a.ratio/float64(a.count))
	}
	fmt.Println()

	if len(m.Unmatched) > 0 {
		fmt.Printf("  Unmatched (%d):\n", len(m.Unmatched))
		for _, u := range m.Unmatched {
			fmt.Printf("    ⚠ %s\n", u)
		}
		fmt.Println()
	}
}
