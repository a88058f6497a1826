package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/docindex/internal/index"
	"github.com/itsmostafa/docindex/internal/render"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for summary boxes
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatStats renders the summary box for an index file.
func FormatStats(w io.Writer, path string, s index.Stats) {
	line1 := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("Entries:"), s.Entries,
		dimStyle.Render("Letters:"), s.Letters,
		dimStyle.Render("Depth:"), s.MaxDepth,
	)
	line2 := fmt.Sprintf("%s %d  %s %d  %s %d  %s %d",
		dimStyle.Render("Groups:"), s.Groups,
		dimStyle.Render("Headings:"), s.Submenus,
		dimStyle.Render("Links:"), s.Links,
		dimStyle.Render("See also:"), s.CrossRefs,
	)

	status := successStyle.Render("OK")
	if s.Duplicates > 0 {
		status = errorStyle.Render(fmt.Sprintf("%d duplicate anchors", s.Duplicates))
	}

	content := titleStyle.Render(path) + "\n" + line1 + "\n" + line2 + "\n" + status
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatCheck renders the result of checking a generated fragment.
func FormatCheck(w io.Writer, path string, r *render.Report) {
	line := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("Anchors:"), r.Anchors,
		dimStyle.Render("Toggles:"), r.Toggles,
		dimStyle.Render("Links:"), r.Links,
	)

	content := titleStyle.Render(path) + "\n" + line
	if r.OK() {
		content += "\n" + successStyle.Render("OK")
	}
	for _, p := range r.Problems() {
		content += "\n" + errorStyle.Render("✗") + " " + p
	}
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatError renders a one-line error message.
func FormatError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}
