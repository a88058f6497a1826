// Package render turns a grouped index tree into the HTML fragment that is
// pasted into the Doxygen index page, and checks generated fragments.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/itsmostafa/docindex/internal/index"
)

// DefaultCollapseImage is the toggle icon, relative to the index page.
const DefaultCollapseImage = "../collapse.png"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Options controls the generated markup.
type Options struct {
	// DocRoot prefixes every generated hyperlink.
	DocRoot string

	// IndexPage is the page the index itself is published at, relative to
	// DocRoot. Defaults to index.DefaultIndexPage.
	IndexPage string

	// CollapseImage is the src of the toggle icon.
	CollapseImage string

	// Collapsed hides everything below the top-level letters until toggled.
	Collapsed bool

	// StrictCrossRefs rejects conflicting cross references.
	StrictCrossRefs bool
}

func (o Options) withDefaults() Options {
	if o.IndexPage == "" {
		o.IndexPage = index.DefaultIndexPage
	}
	if o.CollapseImage == "" {
		o.CollapseImage = DefaultCollapseImage
	}
	return o
}

// Emitter writes index nodes as nested HTML sections. Every emitted group
// header takes the next toggle id; ids are never reused for the lifetime of
// the Emitter.
type Emitter struct {
	w       io.Writer
	opts    Options
	counter int
	err     error
}

// NewEmitter creates an Emitter writing to w.
func NewEmitter(w io.Writer, opts Options) *Emitter {
	return &Emitter{w: w, opts: opts.withDefaults()}
}

// Counter returns the last toggle id handed out.
func (e *Emitter) Counter() int {
	return e.counter
}

// Err returns the first write error, if any.
func (e *Emitter) Err() error {
	return e.err
}

func (e *Emitter) next() int {
	e.counter++
	return e.counter
}

func (e *Emitter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s+"\n")
}

// WriteAlphabet emits the A-Z quick link bar.
func (e *Emitter) WriteAlphabet() {
	var b strings.Builder
	b.WriteString("<h1>")
	for _, c := range alphabet {
		fmt.Fprintf(&b, `<a href="%s#%c">%c</a>`, e.target(e.opts.IndexPage), c, c)
	}
	b.WriteString("</h1>")

	e.println(`\htmlonly`)
	e.println(b.String())
	e.println(`\endhtmlonly`)
}

// WriteNodes emits a sibling list and, depth first, everything below it.
// Lists below the second level are wrapped in <ul>.
func (e *Emitter) WriteNodes(nodes []*index.Node) {
	if len(nodes) == 0 {
		return
	}
	list := nodes[0].Level > 2
	if list {
		e.println("<ul>")
	}
	for _, n := range nodes {
		e.writeNode(n)
	}
	if list {
		e.println("</ul>")
	}
}

func (e *Emitter) writeNode(n *index.Node) {
	id := e.next()
	begin, end := headerTags(n.Level)
	anchor := fmt.Sprintf(`\htmlonly <a class="anchor" id="%s"></a>\endhtmlonly`, n.Anchor)

	if n.Key.HasLink() {
		e.println(fmt.Sprintf(`%s %s <a href="%s">%s</a> %s`,
			begin, anchor, e.target(n.Key.Link), n.Key.Label+n.Key.Synonym, end))
		e.WriteNodes(n.Children)
		return
	}

	// Submenu headings link to their own anchor and toggle the div that
	// wraps their children.
	style := ""
	if e.opts.Collapsed && n.Level >= 2 {
		style = ` style="display:none"`
	}
	e.println(fmt.Sprintf(`%s %s \htmlonly <a href="#%s">%s</a>`+
		`<a onclick="index_toggle('div_id%d','im_id%d')"><img src="%s" id="im_id%d"></a>`+
		`\endhtmlonly %s \htmlonly<div id="div_id%d"%s>\endhtmlonly`,
		begin, anchor, n.Anchor, n.Key.Label,
		id, id, e.opts.CollapseImage, id,
		end, id, style))
	e.WriteNodes(n.Children)
	e.println(`\htmlonly </div> \endhtmlonly`)
}

func (e *Emitter) target(link string) string {
	return e.opts.DocRoot + "/" + link
}

func headerTags(level int) (string, string) {
	switch level {
	case 1:
		return "<h2>", "</h2>"
	case 2:
		return "<h3>", "</h3>"
	default:
		return "<li>", "</li>"
	}
}
