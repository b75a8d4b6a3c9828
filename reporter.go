package routereport

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yacobolo/routereport/internal/console"
)

// Reporter writes a Summary as styled terminal text
type Reporter struct {
	w         io.Writer
	useColors bool
	palette   console.Palette
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
		palette:   console.NewPalette(w, useColors),
	}
}

// Render outputs the banner followed by every section, separated by blank
// lines. The first write error stops rendering and is returned.
func (r *Reporter) Render(s Summary) error {
	var b strings.Builder

	// Banner with a blank line on each side
	fmt.Fprintf(&b, "\n%s\n\n", r.line(s.Banner))

	for i, sec := range s.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		r.writeSection(&b, sec)
	}

	// Trailing blank line
	b.WriteString("\n")

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// writeSection formats a header followed by bullets or numbered steps
func (r *Reporter) writeSection(b *strings.Builder, sec Section) {
	fmt.Fprintln(b, console.RenderStyle(r.style(sec.Tone), sec.Title, r.useColors))

	for i, item := range sec.Items {
		if !sec.Numbered {
			fmt.Fprintf(b, "  • %s\n", r.line(item.Line))
			continue
		}

		// Steps are separated by a blank line; details align under the text
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "  %d. %s\n", i+1, r.line(item.Line))
		for _, d := range item.Details {
			fmt.Fprintf(b, "     %s\n", r.line(d))
		}
	}
}

func (r *Reporter) line(l Line) string {
	var b strings.Builder
	for _, span := range l {
		if span.Tone == TonePlain {
			b.WriteString(span.Text)
			continue
		}
		b.WriteString(console.RenderStyle(r.style(span.Tone), span.Text, r.useColors))
	}
	return b.String()
}

func (r *Reporter) style(t Tone) lipgloss.Style {
	switch t {
	case ToneSuccess:
		return r.palette.Banner
	case ToneCheck:
		return r.palette.Check
	case ToneCommand:
		return r.palette.Command
	case ToneInfo:
		return r.palette.Cyan
	case ToneAttention:
		return r.palette.Yellow
	default:
		return r.palette.Bold
	}
}
