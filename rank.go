package remarks

import (
	"sort"
	"strings"
)

// Entry is the rendered output for one address.
type Entry struct {
	Address string   `json:"address"`
	Labels  []string `json:"labels"`
	Markers int      `json:"markers"`
}

// Field returns the merged label field: the markers followed by the labels
// joined with single spaces.
func (e Entry) Field() string {
	return strings.Repeat(Marker, e.Markers) + strings.Join(e.Labels, " ")
}

// String returns e as an ADDRESS<TAB>FIELD line, without a newline.
func (e Entry) String() string {
	return Record{Address: e.Address, Label: e.Field()}.String()
}

// Report is a list of entries in ranked order.
type Report []Entry

// String returns the report's lines joined by newlines. There is no trailing
// newline.
func (r Report) String() string {
	lines := make([]string, len(r))
	for i, e := range r {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}

// Rank sorts entries by the number of markers in their label field, most
// first, and then by the field text after its leading markers. Entries which
// compare equal keep their relative order. The result shares no storage with
// entries.
func Rank(entries []Entry) Report {
	ranked := make(Report, len(entries))
	copy(ranked, entries)
	keys := make([]rankKey, len(ranked))
	for i, e := range ranked {
		keys[i] = keyOf(e.Field())
	}
	sort.Stable(byRank{ranked, keys})
	return ranked
}

type byRank struct {
	entries Report
	keys    []rankKey
}

func (b byRank) Len() int           { return len(b.entries) }
func (b byRank) Less(i, j int) bool { return b.keys[i].less(b.keys[j]) }
func (b byRank) Swap(i, j int) {
	b.entries[i], b.entries[j] = b.entries[j], b.entries[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

// rankKey orders label fields. Every marker in the field counts, but only
// the leading ones are stripped from the text it is compared by.
type rankKey struct {
	markers int
	text    string
}

func keyOf(field string) rankKey {
	return rankKey{
		markers: strings.Count(field, Marker),
		text:    strings.TrimLeft(field, Marker),
	}
}

func (k rankKey) less(o rankKey) bool {
	if k.markers != o.markers {
		return k.markers > o.markers
	}
	return k.text < o.text
}

// rankLines sorts ADDRESS<TAB>FIELD lines in place by the key of their field.
// A line with no tab is ranked as if it were all field.
func rankLines(lines []string) {
	keys := make([]rankKey, len(lines))
	idx := make([]int, len(lines))
	for i, line := range lines {
		idx[i] = i
		field := line
		if _, f, ok := strings.Cut(line, "\t"); ok {
			field = f
		}
		keys[i] = keyOf(field)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]].less(keys[idx[b]])
	})
	sorted := make([]string, len(lines))
	for i, j := range idx {
		sorted[i] = lines[j]
	}
	copy(lines, sorted)
}
