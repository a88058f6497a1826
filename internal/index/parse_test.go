package index

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Parse(""))
		assert.Empty(t, Parse("  \n\t "))
		assert.Empty(t, Parse("@end @end\n@end"))
	})

	t.Run("splits and trims fields", func(t *testing.T) {
		idx := Parse("  Alpha @ beta  @end\n")
		require.Len(t, idx, 1)
		assert.Equal(t, Entry{"A", "Alpha", "beta"}, idx[0])
	})

	t.Run("drops single character labels", func(t *testing.T) {
		idx := Parse("x@%x.html@end Xylophone@end")
		require.Len(t, idx, 1)
		assert.Equal(t, "Xylophone", idx[0][1])
	})

	t.Run("prepends upper-cased bucket letter", func(t *testing.T) {
		idx := Parse("zeta@end éclair@end")
		require.Len(t, idx, 2)
		assert.Equal(t, "Z", idx[0][0])
		assert.Equal(t, "É", idx[1][0])
	})

	t.Run("sorts by field sequence", func(t *testing.T) {
		idx := Parse("beta@end Alpha@gamma@end Alpha@end alpha@end Alpha@beta@end")
		want := Index{
			{"A", "Alpha"},
			{"A", "Alpha", "beta"},
			{"A", "Alpha", "gamma"},
			{"A", "alpha"},
			{"B", "beta"},
		}
		assert.Equal(t, want, idx)
	})

	t.Run("links sort before plain subtags", func(t *testing.T) {
		idx := Parse("Alpha@beta@end Alpha@%a.html@end")
		require.Len(t, idx, 2)
		assert.Equal(t, "%a.html", idx[0][2])
	})

	t.Run("ignores text after the last record", func(t *testing.T) {
		idx := Parse("Alpha@end\n\n")
		assert.Equal(t, Index{{"A", "Alpha"}}, idx)
	})
}

func TestParseIsSorted(t *testing.T) {
	inputs := []string{
		"Delta@%d.html@end Alpha@beta@end Alpha@gamma@end",
		"Zed@end Yak@x@y@end Yak@x@end Apple pie@%p.html@end Apple@^Apple pie@end",
		"a b@c@end ab@end a@end aa@end",
	}
	for _, in := range inputs {
		idx := Parse(in)
		assert.True(t, slices.IsSortedFunc(idx, func(a, b Entry) int {
			return slices.Compare(a, b)
		}), "input %q", in)
	}
}

func TestLetter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"lower", "alpha", "A"},
		{"upper", "Beta", "B"},
		{"digit", "2D", "2"},
		{"accented", "ñandu", "Ñ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Letter(tt.input))
		})
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  Key
	}{
		{"empty entry", Entry{}, Key{}},
		{"label only", Entry{"Alpha"}, Key{Label: "Alpha"}},
		{"plain subtag", Entry{"Alpha", "beta"}, Key{Label: "Alpha"}},
		{"empty second field", Entry{"Alpha", ""}, Key{Label: "Alpha"}},
		{"unknown marker", Entry{"Alpha", "#beta"}, Key{Label: "Alpha"}},
		{
			"link",
			Entry{"Delta", "%path/to/d.html"},
			Key{Label: "Delta", Link: "path/to/d.html", Marker: MarkerLink},
		},
		{
			"link with repeated marker",
			Entry{"Delta", "%%d.html"},
			Key{Label: "Delta", Link: "d.html", Marker: MarkerLink},
		},
		{
			"cross reference",
			Entry{"Foo", "^Bar"},
			Key{
				Label:   "Foo",
				Link:    "index/html/index.html#B.Bar",
				Synonym: ", see Bar",
				Marker:  MarkerCrossRef,
				Target:  "Bar",
			},
		},
		{
			"cross reference with spaces and dots",
			Entry{"NS", "^ navier stokes.driven cavity "},
			Key{
				Label:   "NS",
				Link:    "index/html/index.html#N.navierstokes.drivencavity",
				Synonym: ", see navier stokes:driven cavity",
				Marker:  MarkerCrossRef,
				Target:  "navier stokes.driven cavity",
			},
		},
		{
			"cross reference without target",
			Entry{"Foo", "^"},
			Key{
				Label:   "Foo",
				Link:    "index/html/index.html#",
				Synonym: ", see ",
				Marker:  MarkerCrossRef,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyOf(tt.entry))
		})
	}
}

func TestKeyOfCustomIndexPage(t *testing.T) {
	k := keyOf(Entry{"Foo", "^bar"}, "glossary.html")
	assert.Equal(t, "glossary.html#B.bar", k.Link)
}

func TestMarkerString(t *testing.T) {
	assert.Equal(t, "plain", MarkerPlain.String())
	assert.Equal(t, "link", MarkerLink.String())
	assert.Equal(t, "crossref", MarkerCrossRef.String())
}

func TestLabels(t *testing.T) {
	idx := Parse("Beta@end Alpha@x@end")
	assert.Equal(t, []string{"Alpha", "Beta"}, idx.Labels())
}
