package render

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/itsmostafa/docindex/internal/index"
)

// Generate parses raw index text and writes the complete index fragment: the
// alphabet bar followed by the nested tree. The tree is built before anything
// is written, so a *index.ConflictingLinkError leaves w untouched.
func Generate(w io.Writer, text string, opts Options) (index.Stats, error) {
	opts = opts.withDefaults()

	idx := index.Parse(text)
	slog.Debug("Parsed index", "entries", len(idx))

	nodes, err := index.Build(idx, index.BuildOptions{
		IndexPage:       opts.IndexPage,
		StrictCrossRefs: opts.StrictCrossRefs,
	})
	if err != nil {
		return index.Stats{}, err
	}

	e := NewEmitter(w, opts)
	e.WriteAlphabet()
	e.WriteNodes(nodes)
	if err := e.Err(); err != nil {
		return index.Stats{}, fmt.Errorf("writing index: %w", err)
	}

	stats := index.Collect(nodes)
	slog.Debug("Emitted index",
		"groups", stats.Groups,
		"submenus", stats.Submenus,
		"links", stats.Links,
		"cross_references", stats.CrossRefs,
		"toggles", e.Counter())
	if stats.Duplicates > 0 {
		slog.Warn("Index contains duplicate anchors", "count", stats.Duplicates)
	}
	return stats, nil
}

// GenerateString is Generate into a string.
func GenerateString(text string, opts Options) (string, index.Stats, error) {
	var buf bytes.Buffer
	stats, err := Generate(&buf, text, opts)
	if err != nil {
		return "", stats, err
	}
	return buf.String(), stats, nil
}
