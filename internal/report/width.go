package report

import (
	"strings"

	"golang.org/x/text/width"
)

// DisplayWidth returns the terminal column width of a string, counting
// East Asian wide and fullwidth runes as two columns. Card names and set
// names are Chinese text, so byte or rune counts misalign columns badly.
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// PadDisplay pads s with trailing spaces up to the given display width.
// Strings already wider than the target are returned unchanged.
func PadDisplay(s string, target int) string {
	if pad := target - DisplayWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// PadDisplayLeft pads s with leading spaces up to the given display width.
func PadDisplayLeft(s string, target int) string {
	if pad := target - DisplayWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
