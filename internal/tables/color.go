package tables

import (
	"fmt"
	"strings"
)

// Channel selects the RGB input a partial table is built from.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "r"
	case Green:
		return "g"
	case Blue:
		return "b"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// ParseChannel accepts r, g, b or their full names.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(s) {
	case "r", "red":
		return Red, nil
	case "g", "green":
		return Green, nil
	case "b", "blue":
		return Blue, nil
	}
	return 0, fmt.Errorf("unknown channel %q (want r, g or b)", s)
}

// RGBToYUV applies the full-range BT.601 forward transform.
func RGBToYUV(r, g, b float64) (y, u, v float64) {
	y = 0.299*r + 0.587*g + 0.114*b
	u = -0.168735892*r - 0.331264108*g + 0.5*b
	v = 0.5*r - 0.418687589*g - 0.081312411*b
	return y, u, v
}

// YUVToRGB reconstructs only the blue channel, y + 2.218u. The red and
// green formulas are not part of the table set.
func YUVToRGB(y, u, v float64) float64 {
	return y + 2.218*u
}

// YUVTables holds the per-value contribution of one RGB channel to Y, U
// and V. The other two channels are held at zero, so a table is a partial
// term, not a full conversion.
type YUVTables struct {
	Channel Channel
	Y       [256]float64
	U       [256]float64
	V       [256]float64
}

// PartialTables evaluates RGBToYUV for every 8-bit value of ch.
func PartialTables(ch Channel) YUVTables {
	t := YUVTables{Channel: ch}
	for i := 0; i < 256; i++ {
		var r, g, b float64
		switch ch {
		case Red:
			r = float64(i)
		case Green:
			g = float64(i)
		case Blue:
			b = float64(i)
		}
		t.Y[i], t.U[i], t.V[i] = RGBToYUV(r, g, b)
	}
	return t
}

// RGBToYUVPartialTables returns the red-channel tables.
func RGBToYUVPartialTables() YUVTables {
	return PartialTables(Red)
}

// InverseTable evaluates YUVToRGB(0, u, 0) for every 8-bit u.
func InverseTable() [256]float64 {
	var t [256]float64
	for u := range t {
		t[u] = YUVToRGB(0, float64(u), 0)
	}
	return t
}
