package index

import (
	"encoding/json"
)

// Entry is one parsed record: its trimmed fields from outermost tag to
// innermost, optionally ending in a link or cross reference marker field.
type Entry []string

// Index is the full sorted list of Entries for one run. After Parse, every
// Entry starts with the synthetic bucket letter of its label.
type Index []Entry

// Marker classifies the second field of an Entry.
type Marker int

const (
	// MarkerPlain means the Entry has no second field, or an ordinary one
	// that continues the nesting chain.
	MarkerPlain Marker = iota
	// MarkerLink means the second field starts with '%'.
	MarkerLink
	// MarkerCrossRef means the second field starts with '^'.
	MarkerCrossRef
)

func (m Marker) String() string {
	switch m {
	case MarkerLink:
		return "link"
	case MarkerCrossRef:
		return "crossref"
	default:
		return "plain"
	}
}

// Key is what a group of Entries sharing a label is rendered from.
type Key struct {
	Label   string `json:"label"`
	Link    string `json:"link,omitempty"`
	Synonym string `json:"synonym,omitempty"`
	Marker  Marker `json:"-"`
	// Target is the referenced label of a cross reference, as written.
	Target string `json:"target,omitempty"`
}

// HasLink reports whether the key renders as a hyperlink rather than a
// collapsible submenu heading.
func (k Key) HasLink() bool {
	return k.Link != ""
}

// Node is one emitted group of the tree.
type Node struct {
	Key      Key     `json:"key"`
	Anchor   string  `json:"anchor"`
	Level    int     `json:"level"`
	Entries  int     `json:"entries"`
	Children []*Node `json:"children,omitempty"`
}

// Label returns the label of the node's key.
func (n *Node) Label() string {
	return n.Key.Label
}

// String returns a JSON representation of the Node for debugging.
func (n *Node) String() string {
	b, _ := json.MarshalIndent(n, "", "  ")
	return string(b)
}

// Walk traverses the tree in depth-first order, calling fn for each node.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// FlattenTree returns all nodes in emission order.
func FlattenTree(nodes []*Node) []*Node {
	var result []*Node
	for _, node := range nodes {
		node.Walk(func(n *Node) {
			result = append(result, n)
		})
	}
	return result
}

// Stats summarises a built tree.
type Stats struct {
	Entries    int `json:"entries"`
	Groups     int `json:"groups"`
	Submenus   int `json:"submenus"`
	Links      int `json:"links"`
	CrossRefs  int `json:"cross_references"`
	Letters    int `json:"letters"`
	MaxDepth   int `json:"max_depth"`
	Duplicates int `json:"duplicate_anchors"`
}

// Collect walks the tree and counts its groups by kind.
func Collect(nodes []*Node) Stats {
	var s Stats
	seen := make(map[string]bool)
	for _, n := range FlattenTree(nodes) {
		s.Groups++
		if n.Level == 1 {
			s.Letters++
			s.Entries += n.Entries
		}
		if n.Level > s.MaxDepth {
			s.MaxDepth = n.Level
		}
		switch {
		case n.Key.Marker == MarkerCrossRef && n.Key.HasLink():
			s.CrossRefs++
		case n.Key.HasLink():
			s.Links++
		default:
			s.Submenus++
		}
		if seen[n.Anchor] {
			s.Duplicates++
		}
		seen[n.Anchor] = true
	}
	return s
}
