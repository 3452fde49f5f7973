package tables

import (
	"fmt"
	"io"
	"strings"
)

// WriteDCT prints one basis row per line as width-8 integers, each followed
// by ", ".
func WriteDCT(w io.Writer, basis [BlockSize][BlockSize]int32) error {
	var sb strings.Builder
	for _, row := range basis {
		for _, c := range row {
			fmt.Fprintf(&sb, "%8d, ", c)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteYUV prints the Y, U and V tables as brace-delimited initializer
// lists with two decimals per entry.
func WriteYUV(w io.Writer, t YUVTables) error {
	var sb strings.Builder
	sb.WriteString("{\n")
	sb.WriteString(joinFloats(t.Y[:]))
	sb.WriteString("\n},{\n")
	sb.WriteString(joinFloats(t.U[:]))
	sb.WriteString("\n},{\n")
	sb.WriteString(joinFloats(t.V[:]))
	sb.WriteString("\n}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteInverse prints the inverse table on a single line.
func WriteInverse(w io.Writer, t [256]float64) error {
	_, err := io.WriteString(w, joinFloats(t[:])+"\n")
	return err
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return strings.Join(parts, ", ")
}
