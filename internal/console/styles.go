// Package console holds the terminal styling shared by the text reporter.
package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette is the set of styles used for the post-generation summary.
// Styles are bound to a renderer so output never depends on the process-wide
// default renderer.
type Palette struct {
	// Banner is used for the success line.
	Banner lipgloss.Style
	// Check is used for the check mark in front of enabled components.
	Check lipgloss.Style
	// Command is used for shell commands, paths and URLs.
	Command lipgloss.Style
	// Cyan is used for the Generated Components and Tips headers.
	Cyan lipgloss.Style
	// Yellow is used for the Next Steps header.
	Yellow lipgloss.Style
	// Bold is used for headers without a color.
	Bold lipgloss.Style
}

// NewPalette builds a palette rendering to w. When useColors is set the
// renderer is pinned to the 16-color ANSI profile, which keeps escape
// sequences identical across terminals.
func NewPalette(w io.Writer, useColors bool) Palette {
	r := lipgloss.NewRenderer(w)
	if useColors {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	// Values are printed as given: tabs stay tabs.
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return Palette{
		Banner:  base.Bold(true).Foreground(lipgloss.Color("10")),
		Check:   base.Foreground(lipgloss.Color("10")),
		Command: base.Foreground(lipgloss.Color("12")),
		Cyan:    base.Bold(true).Foreground(lipgloss.Color("14")),
		Yellow:  base.Bold(true).Foreground(lipgloss.Color("11")),
		Bold:    base.Bold(true),
	}
}

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified. Each line is
// styled on its own so lipgloss never pads lines to a common width; with the
// escape sequences removed the result equals text.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors || text == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
