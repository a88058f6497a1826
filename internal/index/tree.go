package index

import (
	"fmt"
)

// ConflictingLinkError is returned by Build when entries sharing one label
// claim different link targets.
type ConflictingLinkError struct {
	Label       string
	Anchor      string
	Existing    string
	Conflicting string
}

func (e *ConflictingLinkError) Error() string {
	return fmt.Sprintf("multiple links for the same key %q (anchor %s): %q and %q",
		e.Label, e.Anchor, e.Existing, e.Conflicting)
}

// BuildOptions controls how Build groups an Index.
type BuildOptions struct {
	// IndexPage is the page cross references point into. Defaults to
	// DefaultIndexPage.
	IndexPage string

	// StrictCrossRefs rejects groups whose cross references resolve to a
	// target other than the group's link. Off by default: duplicate or
	// conflicting cross references are accepted silently.
	StrictCrossRefs bool
}

// Build groups a sorted Index into a tree of Nodes. Entries sharing a label
// at the same position form one Node; the rest of their fields become the
// Node's children one level down. Top-level Nodes are the bucket letters
// Parse prepends.
//
// Build fails with a *ConflictingLinkError as soon as one label is given two
// different '%' link targets. No partial tree is returned in that case.
func Build(idx Index, opts BuildOptions) ([]*Node, error) {
	if opts.IndexPage == "" {
		opts.IndexPage = DefaultIndexPage
	}
	b := &builder{opts: opts}
	return b.group(idx, 1, "")
}

type builder struct {
	opts BuildOptions
}

// pending is the group currently being accumulated.
type pending struct {
	key     Key
	entries int
	sub     []Entry
}

func (b *builder) start(e Entry) *pending {
	g := &pending{key: keyOf(e, b.opts.IndexPage), entries: 1}
	// Only submenu headings carry their remaining fields down.
	if !g.key.HasLink() && len(e) > 1 {
		g.sub = []Entry{e[1:]}
	}
	return g
}

func (b *builder) group(entries []Entry, level int, parent string) ([]*Node, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	var nodes []*Node
	flush := func(g *pending) error {
		anchor := Anchor(parent, g.key.Label, level)
		children, err := b.group(g.sub, level+1, anchor)
		if err != nil {
			return err
		}
		nodes = append(nodes, &Node{
			Key:      g.key,
			Anchor:   anchor,
			Level:    level,
			Entries:  g.entries,
			Children: children,
		})
		return nil
	}

	current := b.start(entries[0])
	for _, e := range entries[1:] {
		if e[0] != current.key.Label {
			if err := flush(current); err != nil {
				return nil, err
			}
			current = b.start(e)
			continue
		}
		current.entries++
		if err := b.absorb(current, e, Anchor(parent, current.key.Label, level)); err != nil {
			return nil, err
		}
	}
	if err := flush(current); err != nil {
		return nil, err
	}
	return nodes, nil
}

// absorb merges an entry into the group that shares its label.
func (b *builder) absorb(g *pending, e Entry, anchor string) error {
	if len(e) < 2 {
		return nil
	}
	k := keyOf(e, b.opts.IndexPage)
	switch k.Marker {
	case MarkerLink:
		if k.Link != g.key.Link {
			return &ConflictingLinkError{
				Label:       g.key.Label,
				Anchor:      anchor,
				Existing:    g.key.Link,
				Conflicting: k.Link,
			}
		}
	case MarkerCrossRef:
		if b.opts.StrictCrossRefs && k.Link != g.key.Link {
			return &ConflictingLinkError{
				Label:       g.key.Label,
				Anchor:      anchor,
				Existing:    g.key.Link,
				Conflicting: k.Link,
			}
		}
	default:
		g.sub = append(g.sub, e[1:])
	}
	return nil
}

// Anchor returns the anchor of a node labelled label below parent. Level one
// anchors are the label alone; deeper ones join the ancestors with '.'.
// Spaces are removed.
func Anchor(parent, label string, level int) string {
	if level <= 1 || parent == "" {
		return stripSpaces(label)
	}
	return parent + "." + stripSpaces(label)
}
