package remarks

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker is the confidence marker written once per label in front of a
// merged group.
const Marker = "✅"

// Group holds every label seen for one address, in the order they were read.
type Group struct {
	Address string
	Labels  []string
}

// Entry returns the rendered form of g. A single label is kept unchanged.
// Two or more labels are ordered by their trailing number and prefixed with
// one Marker each.
func (g Group) Entry() Entry {
	if len(g.Labels) < 2 {
		return Entry{Address: g.Address, Labels: append([]string(nil), g.Labels...)}
	}
	labels := append([]string(nil), g.Labels...)
	keys := make(map[string]suffix, len(labels))
	for _, l := range labels {
		keys[l] = trailingNumber(l)
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return keys[labels[i]].less(keys[labels[j]])
	})
	return Entry{Address: g.Address, Labels: labels, Markers: len(labels)}
}

// Groups maps addresses to their labels, remembering the order in which each
// address was first seen.
type Groups struct {
	// Lines is the number of input lines read, and Skipped the number of
	// those which held no tab.
	Lines   int
	Skipped int

	index map[string]int
	list  []*Group
}

// NewGroups returns an empty Groups.
func NewGroups() *Groups {
	return &Groups{index: map[string]int{}}
}

// Add appends r's label to the group for r's address, creating the group if
// this is the first time the address has been seen.
func (g *Groups) Add(r Record) {
	if g.index == nil {
		g.index = map[string]int{}
	}
	i, ok := g.index[r.Address]
	if !ok {
		i = len(g.list)
		g.index[r.Address] = i
		g.list = append(g.list, &Group{Address: r.Address})
	}
	g.list[i].Labels = append(g.list[i].Labels, r.Label)
}

// AddLine parses line and adds the record it holds. Lines without a tab are
// counted as skipped.
func (g *Groups) AddLine(line string) {
	g.Lines++
	r, ok := ParseRecord(line)
	if !ok {
		g.Skipped++
		return
	}
	g.Add(r)
}

// Get returns the group for address, if there is one.
func (g *Groups) Get(address string) (*Group, bool) {
	if g == nil {
		return nil, false
	}
	i, ok := g.index[address]
	if !ok {
		return nil, false
	}
	return g.list[i], true
}

// Len returns the number of distinct addresses.
func (g *Groups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.list)
}

// All returns the groups in the order their addresses were first seen.
func (g *Groups) All() []*Group {
	if g == nil {
		return nil
	}
	return g.list
}

// Entries returns the rendered entry for every group, in first-seen order.
func (g *Groups) Entries() []Entry {
	entries := make([]Entry, 0, g.Len())
	for _, grp := range g.All() {
		entries = append(entries, grp.Entry())
	}
	return entries
}

// Report returns the ranked entries for every group.
func (g *Groups) Report() Report {
	return Rank(g.Entries())
}

// suffix is the sort key taken from the end of a label: the run of decimal
// digits it ends with, or none. A label with no number sorts after every
// label that has one.
type suffix struct {
	digits string
	ok     bool
}

// trailingNumber returns the key for label. Any Unicode decimal digit
// counts, and leading zeros are dropped so that keys compare by value.
func trailingNumber(label string) suffix {
	var digits []byte
	for len(label) > 0 {
		r, size := utf8.DecodeLastRuneInString(label)
		if !unicode.Is(unicode.Nd, r) {
			break
		}
		digits = append(digits, '0'+digitValue(r))
		label = label[:len(label)-size]
	}
	if len(digits) == 0 {
		return suffix{}
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return suffix{digits: strings.TrimLeft(string(digits), "0"), ok: true}
}

// digitValue returns the value of the decimal digit r. Decimal digits come in
// contiguous runs of ten, zero first, so the value is r's offset from the
// start of its run modulo ten.
func digitValue(r rune) byte {
	if r >= '0' && r <= '9' {
		return byte(r - '0')
	}
	start := r
	for unicode.Is(unicode.Nd, start-1) {
		start--
	}
	return byte((r - start) % 10)
}

func (s suffix) less(t suffix) bool {
	switch {
	case !s.ok:
		return false
	case !t.ok:
		return true
	case len(s.digits) != len(t.digits):
		return len(s.digits) < len(t.digits)
	}
	return s.digits < t.digits
}
