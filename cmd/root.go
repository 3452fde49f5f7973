package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "codecq",
	Short: "Codec table generator and image fidelity scorer",
	Long: `codecq — numeric helpers for building and evaluating an image codec.

Scores compressed images against their originals (PSNR, windowed SSIM,
compression ratio) one pair at a time or over whole directories, and
prints the fixed-point DCT basis and RGB→YUV tables a codec embeds.`,
	Version:      version,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"codecq %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[codecq] "+format+"\n", args...)
	}
}
