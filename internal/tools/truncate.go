// internal/tools/truncate.go
package tools

import "strconv"

// suffixReserve is runes held back for the truncation notice.
const suffixReserve = 60

// TruncateOutput caps s at maxRunes runes so an oversized page cannot blow
// the model context. If maxRunes <= 0, s is returned unchanged. Truncation
// keeps the start of the page and appends a notice with the total rune count.
func TruncateOutput(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	keep := maxRunes - suffixReserve
	if keep <= 0 {
		keep = 1
	}
	return string(r[:keep]) + "\n...[output truncated, total " + strconv.Itoa(len(r)) + " runes]"
}
