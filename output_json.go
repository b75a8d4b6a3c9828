package routereport

import (
	"encoding/json"
	"io"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version    string         `json:"version"`
	Route      Snapshot       `json:"route"`
	Features   JSONFeatures   `json:"features"`
	Components []string       `json:"components"`
	NextSteps  []JSONNextStep `json:"next_steps"`
	Tips       []string       `json:"tips"`
	Help       []string       `json:"help"`
	PreviewURL string         `json:"preview_url"`
}

// JSONFeatures lists the optional components and whether they were generated
type JSONFeatures struct {
	Filters bool `json:"filters"`
	Table   bool `json:"table"`
	Modal   bool `json:"modal"`
}

// JSONNextStep is one manual step the user still has to take
type JSONNextStep struct {
	Number  int      `json:"number"`
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

// WriteJSON writes the summary as JSON
func WriteJSON(w io.Writer, s Summary) error {
	output := buildJSONOutput(s)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}

// buildJSONOutput converts Summary to JSONOutput. No timestamp: equal
// summaries must encode to equal bytes.
func buildJSONOutput(s Summary) JSONOutput {
	out := JSONOutput{
		Version: "1.0",
		Route:   s.Snapshot,
		Features: JSONFeatures{
			Filters: s.Snapshot.IncludeFilters,
			Table:   s.Snapshot.IncludeTable,
			Modal:   s.Snapshot.IncludeModal,
		},
		Components: []string{},
		NextSteps:  []JSONNextStep{},
		Tips:       []string{},
		Help:       []string{},
		PreviewURL: s.PreviewURL,
	}

	for _, sec := range s.Sections {
		switch sec.ID {
		case SectionComponents:
			out.Components = labels(sec.Items)
		case SectionNextSteps:
			for i, item := range sec.Items {
				details := make([]string, len(item.Details))
				for j, d := range item.Details {
					details[j] = d.String()
				}
				out.NextSteps = append(out.NextSteps, JSONNextStep{
					Number:  i + 1,
					Title:   item.Line.String(),
					Details: details,
				})
			}
		case SectionTips:
			out.Tips = labels(sec.Items)
		case SectionHelp:
			out.Help = labels(sec.Items)
		}
	}

	return out
}

func labels(items []Item) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = item.Line.Label()
	}
	return result
}
