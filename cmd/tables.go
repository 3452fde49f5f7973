package cmd

import (
	"github.com/AnyUserName/codecq/internal/tables"
	"github.com/spf13/cobra"
)

var (
	tablesChannel string
	tablesInverse bool
	tablesNoDCT   bool
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the fixed-point DCT basis and RGB→YUV tables",
	Long: `Prints the 8×8 DCT-II basis scaled by 2^13 (truncated), one row per
line, followed by the Y, U and V contribution tables of one RGB channel
as {…},{…},{…} initializer lists ready to paste into codec sources.`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().StringVarP(&tablesChannel, "channel", "c", "r", "RGB channel the YUV tables are built from (r, g, b)")
	tablesCmd.Flags().BoolVar(&tablesInverse, "inverse", false, "also print the U→B reconstruction table")
	tablesCmd.Flags().BoolVar(&tablesNoDCT, "no-dct", false, "skip the DCT basis")
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, _ []string) error {
	ch, err := tables.ParseChannel(tablesChannel)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !tablesNoDCT {
		if err := tables.WriteDCT(out, tables.DCTBasis()); err != nil {
			return err
		}
	}
	logVerbose("yuv tables from channel %s", ch)
	if err := tables.WriteYUV(out, tables.PartialTables(ch)); err != nil {
		return err
	}
	if tablesInverse {
		return tables.WriteInverse(out, tables.InverseTable())
	}
	return nil
}
