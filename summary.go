package routereport

import (
	"fmt"
	"strings"
)

// templateName is the scaffolding template whose documentation the report
// points at.
const templateName = "cc_kaizen_routes"

// Tone tells a renderer how a span or heading should be emphasised.
type Tone int

const (
	TonePlain     Tone = iota
	ToneSuccess        // success banner
	ToneCheck          // check mark in front of an enabled component
	ToneCommand        // shell commands, paths and URLs
	ToneInfo           // informational headers
	ToneAttention      // headers the user must act on
	ToneStrong         // uncolored headers
)

// Span is a run of text with a single tone.
type Span struct {
	Text string
	Tone Tone
}

// Line is one output line made of spans.
type Line []Span

// String returns the line without any styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Label returns the line without styling and without check marks.
func (l Line) Label() string {
	var b strings.Builder
	for _, s := range l {
		if s.Tone == ToneCheck {
			continue
		}
		b.WriteString(s.Text)
	}
	return strings.TrimSpace(b.String())
}

// Item is a bullet or a numbered step with optional indented detail lines.
type Item struct {
	Line    Line
	Details []Line
}

// SectionID identifies a block of the report.
type SectionID string

// Report sections, in output order
const (
	SectionComponents SectionID = "components"
	SectionNextSteps  SectionID = "next-steps"
	SectionTips       SectionID = "tips"
	SectionHelp       SectionID = "help"
)

// Section is a titled block of the report.
type Section struct {
	ID       SectionID
	Title    string
	Tone     Tone
	Numbered bool // steps instead of bullets
	Items    []Item
}

// Summary is the complete content of a post-generation report. Every output
// format renders the same Summary.
type Summary struct {
	Snapshot   Snapshot
	PreviewURL string
	Banner     Line
	Sections   []Section
}

// Section returns the section with the given id.
func (s Summary) Section(id SectionID) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// BuildSummary composes the report for a snapshot. Values are used verbatim;
// nothing is validated.
func BuildSummary(snap Snapshot, opts Options) Summary {
	opts = opts.withDefaults()
	preview := opts.PreviewURL(snap.RouteName)

	return Summary{
		Snapshot:   snap,
		PreviewURL: preview,
		Banner:     Line{{Text: fmt.Sprintf("✓ Route '%s' generated successfully!", snap.RouteName), Tone: ToneSuccess}},
		Sections: []Section{
			componentsSection(snap),
			nextStepsSection(snap, opts, preview),
			tipsSection(),
			helpSection(opts),
		},
	}
}

func componentsSection(snap Snapshot) Section {
	items := []Item{
		{Line: plain("Page type: " + snap.RouteType)},
	}

	features := []struct {
		enabled bool
		label   string
	}{
		{snap.IncludeFilters, "Cascading filters (Subject/Topic/Subtopic)"},
		{snap.IncludeTable, "Sortable table"},
		{snap.IncludeModal, "Modal dialog"},
	}
	for _, f := range features {
		if !f.enabled {
			continue
		}
		items = append(items, Item{Line: Line{
			{Text: "✓", Tone: ToneCheck},
			{Text: " " + f.label},
		}})
	}

	return Section{
		ID:    SectionComponents,
		Title: "Generated Components:",
		Tone:  ToneInfo,
		Items: items,
	}
}

func nextStepsSection(snap Snapshot, opts Options, preview string) Section {
	name := snap.RouteName

	display := "• Update card fields to match your data structure"
	if snap.IncludeTable {
		display = "• Update table columns to match your data structure"
	}

	return Section{
		ID:       SectionNextSteps,
		Title:    "Next Steps:",
		Tone:     ToneAttention,
		Numbered: true,
		Items: []Item{
			{
				Line: plain("Move the route to your SvelteKit project:"),
				Details: []Line{
					command(fmt.Sprintf("mv %s %s/", name, opts.RoutesDir)),
					command(fmt.Sprintf("# Or: mv %s %s/analytics/", name, opts.RoutesDir)),
				},
			},
			{
				Line: plain("Update the data fetching logic:"),
				Details: []Line{
					{{Text: "Open: "}, {Text: name + "/+page.svelte", Tone: ToneCommand}},
					{{Text: "Find: "}, {Text: "await supabase.rpc('your_rpc_function_here', ...)", Tone: ToneCommand}},
					plain("Replace with your actual RPC function"),
				},
			},
			{
				Line:    plain("Customize the display:"),
				Details: []Line{plain(display)},
			},
			{
				Line:    plain("Test your route:"),
				Details: []Line{command(preview)},
			},
		},
	}
}

func tipsSection() Section {
	return Section{
		ID:    SectionTips,
		Title: "Tips:",
		Tone:  ToneInfo,
		Items: []Item{
			{Line: plain("User authentication is already configured")},
			{Line: plain("Loading and error states are built-in")},
			{Line: plain("Responsive design works on all devices")},
			{Line: plain("Muted purple theme is pre-applied")},
		},
	}
}

func helpSection(opts Options) Section {
	return Section{
		ID:    SectionHelp,
		Title: "For more help, see:",
		Tone:  ToneStrong,
		Items: []Item{
			{Line: Line{{Text: templateName + "/README.md", Tone: ToneCommand}, {Text: " - Full documentation"}}},
			{Line: Line{{Text: templateName + "/USAGE.md", Tone: ToneCommand}, {Text: " - Quick start guide"}}},
			{Line: Line{{Text: opts.RoutesDir + "/analytics/", Tone: ToneCommand}, {Text: " - Example routes"}}},
		},
	}
}

func plain(text string) Line {
	return Line{{Text: text}}
}

func command(text string) Line {
	return Line{{Text: text, Tone: ToneCommand}}
}
