package render

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var togglePattern = regexp.MustCompile(`index_toggle\('div_id(\d+)','im_id(\d+)'\)`)

// Report is the result of checking a generated index fragment.
type Report struct {
	Anchors int
	Toggles int
	Links   int

	// DuplicateAnchors lists anchor ids that occur more than once.
	DuplicateAnchors []string
	// MissingTargets lists toggle ids without a matching div or image.
	MissingTargets []string
	// OutOfOrder lists toggle ids that do not increase in document order.
	OutOfOrder []int
}

// OK reports whether no problems were found.
func (r *Report) OK() bool {
	return len(r.DuplicateAnchors) == 0 && len(r.MissingTargets) == 0 && len(r.OutOfOrder) == 0
}

// Problems returns one line per problem found.
func (r *Report) Problems() []string {
	var out []string
	for _, a := range r.DuplicateAnchors {
		out = append(out, fmt.Sprintf("duplicate anchor %q", a))
	}
	for _, m := range r.MissingTargets {
		out = append(out, fmt.Sprintf("toggle without target %q", m))
	}
	for _, id := range r.OutOfOrder {
		out = append(out, fmt.Sprintf("toggle id %d out of order", id))
	}
	return out
}

// Verify parses a generated fragment and checks that anchors are unique and
// that every collapse toggle refers to an existing div and image, with ids
// increasing in document order.
func Verify(r io.Reader) (*Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	report := &Report{}
	anchors := make(map[string]int)
	ids := make(map[string]bool)
	var toggles [][2]string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			id := getAttr(n, "id")
			if id != "" {
				ids[n.Data+"#"+id] = true
			}
			if n.Data == "a" {
				if getAttr(n, "class") == "anchor" && id != "" {
					anchors[id]++
					if anchors[id] == 2 {
						report.DuplicateAnchors = append(report.DuplicateAnchors, id)
					}
				}
				if m := togglePattern.FindStringSubmatch(getAttr(n, "onclick")); m != nil {
					toggles = append(toggles, [2]string{m[1], m[2]})
				}
				if href := getAttr(n, "href"); href != "" && !strings.HasPrefix(href, "#") {
					report.Links++
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	report.Anchors = len(anchors)
	report.Toggles = len(toggles)

	last := 0
	for _, t := range toggles {
		if !ids["div#div_id"+t[0]] {
			report.MissingTargets = append(report.MissingTargets, "div_id"+t[0])
		}
		if !ids["img#im_id"+t[1]] {
			report.MissingTargets = append(report.MissingTargets, "im_id"+t[1])
		}
		n, err := strconv.Atoi(t[0])
		if err != nil {
			continue
		}
		if n <= last {
			report.OutOfOrder = append(report.OutOfOrder, n)
		}
		last = n
	}
	return report, nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
