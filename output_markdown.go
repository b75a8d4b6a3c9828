package routereport

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"
)

// WriteMarkdown writes the summary as a Markdown document, suitable for a
// pull request description or the generated route's README.
func WriteMarkdown(w io.Writer, s Summary) error {
	md := markdown.NewMarkdown(w)

	md.H1(s.Banner.Label())
	md.PlainText("")

	writeMarkdownRoute(md, s)

	for _, sec := range s.Sections {
		md.H2(strings.TrimSuffix(sec.Title, ":"))
		md.PlainText("")

		if sec.Numbered {
			writeMarkdownSteps(md, sec)
			continue
		}

		bullets := make([]string, len(sec.Items))
		for i, item := range sec.Items {
			bullets[i] = markdownLine(item.Line)
		}
		md.BulletList(bullets...)
		md.PlainText("")
	}

	return md.Build()
}

// writeMarkdownRoute writes a property table describing the generated route.
func writeMarkdownRoute(md *markdown.Markdown, s Summary) {
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Route", "`" + tableCell(s.Snapshot.RouteName) + "`"},
			{"Display name", tableCell(s.Snapshot.DisplayName)},
			{"Page type", tableCell(s.Snapshot.RouteType)},
			{"Preview", "`" + tableCell(s.PreviewURL) + "`"},
		},
	})
	md.PlainText("")
}

// tableCell escapes pipes and line breaks, which would otherwise end the
// cell or the row.
func tableCell(v string) string {
	return tableCellReplacer.Replace(v)
}

var tableCellReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
)

// writeMarkdownSteps writes each numbered step as a heading with its details
// as a bullet list underneath.
func writeMarkdownSteps(md *markdown.Markdown, sec Section) {
	for i, item := range sec.Items {
		md.H3(fmt.Sprintf("%d. %s", i+1, strings.TrimSuffix(item.Line.String(), ":")))
		md.PlainText("")

		if len(item.Details) == 0 {
			continue
		}
		details := make([]string, len(item.Details))
		for j, d := range item.Details {
			details[j] = markdownLine(d)
		}
		md.BulletList(details...)
		md.PlainText("")
	}
}

// markdownLine formats commands as inline code and drops the terminal bullet
// glyph, which would otherwise nest inside the list marker.
func markdownLine(l Line) string {
	var b strings.Builder
	for _, span := range l {
		if span.Tone == ToneCommand {
			b.WriteString("`" + span.Text + "`")
			continue
		}
		b.WriteString(span.Text)
	}
	return strings.TrimPrefix(b.String(), "• ")
}
