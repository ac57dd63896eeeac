package remarks

import (
	"strings"
	"unicode"
)

// Record is one address and label pair read from a line of input.
type Record struct {
	Address string
	Label   string
}

// ParseRecord trims surrounding whitespace from line and splits it on the
// first tab into an address and a label. The label keeps any further tabs.
// If the trimmed line contains no tab, ok is false and the line should be
// skipped.
func ParseRecord(line string) (r Record, ok bool) {
	line = strings.TrimFunc(line, isSpace)
	address, label, ok := strings.Cut(line, "\t")
	if !ok {
		return Record{}, false
	}
	return Record{Address: address, Label: label}, true
}

// isSpace reports whether r is trimmed from the ends of a line. Besides
// Unicode white space this includes the ASCII separators U+001C to U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// String renders r back into its ADDRESS<TAB>LABEL form.
func (r Record) String() string {
	return r.Address + "\t" + r.Label
}
