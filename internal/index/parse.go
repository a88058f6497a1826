package index

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// RecordSeparator terminates a record.
	RecordSeparator = "@end"
	// FieldSeparator separates the tags of a record.
	FieldSeparator = "@"
	// LinkPrefix marks a field as a path relative to the documentation root.
	LinkPrefix = "%"
	// CrossRefPrefix marks a field as a reference to another label.
	CrossRefPrefix = "^"

	// DefaultIndexPage is the page, relative to the documentation root, that
	// the generated index is published at. Cross references point into it.
	DefaultIndexPage = "index/html/index.html"
)

// Parse splits raw index text into Entries, prefixes each with the upper-cased
// first letter of its label and returns them sorted. Records whose label is
// at most one character long are treated as stray whitespace and dropped.
func Parse(text string) Index {
	var idx Index
	for _, record := range strings.Split(text, RecordSeparator) {
		fields := strings.Split(record, FieldSeparator)
		entry := make(Entry, 0, len(fields))
		for _, f := range fields {
			entry = append(entry, strings.TrimSpace(f))
		}
		if utf8.RuneCountInString(entry[0]) <= 1 {
			continue
		}
		idx = append(idx, append(Entry{Letter(entry[0])}, entry...))
	}
	idx.Sort()
	return idx
}

// Letter returns the alphabetical bucket of a label: its first character,
// upper-cased.
func Letter(label string) string {
	if label == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(cases.Upper(language.Und).String(label))
	return string(r)
}

// Sort orders the Index lexicographically by field sequence. Equal entries
// keep their input order.
func (idx Index) Sort() {
	slices.SortStableFunc(idx, func(a, b Entry) int {
		return slices.Compare(a, b)
	})
}

// Labels returns the original first field of every entry, without the
// synthetic bucket letter.
func (idx Index) Labels() []string {
	labels := make([]string, 0, len(idx))
	for _, e := range idx {
		if len(e) > 1 {
			labels = append(labels, e[1])
		}
	}
	return labels
}

// KeyOf derives the Key of an Entry using DefaultIndexPage for cross
// references.
func KeyOf(e Entry) Key {
	return keyOf(e, DefaultIndexPage)
}

func keyOf(e Entry, indexPage string) Key {
	if len(e) == 0 {
		return Key{}
	}
	k := Key{Label: e[0]}
	if len(e) == 1 {
		return k
	}
	switch field := e[1]; {
	case strings.HasPrefix(field, LinkPrefix):
		k.Marker = MarkerLink
		k.Link = strings.TrimLeft(field, LinkPrefix)
	case strings.HasPrefix(field, CrossRefPrefix):
		target := strings.TrimSpace(strings.TrimLeft(field, CrossRefPrefix))
		k.Marker = MarkerCrossRef
		k.Target = target
		k.Link = crossRefLink(indexPage, target)
		k.Synonym = ", see " + strings.ReplaceAll(target, ".", ":")
	}
	return k
}

// crossRefLink builds the in-index link of a referenced label. The anchor
// scheme matches the one Build assigns to second-level nodes.
func crossRefLink(indexPage, target string) string {
	anchor := stripSpaces(target)
	if anchor == "" {
		return indexPage + "#"
	}
	return indexPage + "#" + Letter(anchor) + "." + anchor
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
