package routereport

import (
	"fmt"
	"io"
	"strings"
)

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputText is the styled terminal summary (default)
	OutputText OutputFormat = "text"
	// OutputJSON exports the summary as structured JSON (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown renders the summary as Markdown (READMEs, PR descriptions)
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the output format from the format flag.
// Unknown values fall back to text so the hook never fails on a typo.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch strings.ToLower(strings.TrimSpace(formatFlag)) {
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	default:
		return OutputText
	}
}

// WriteOutput writes the summary in the specified format.
// useColors only affects the text format.
func WriteOutput(w io.Writer, s Summary, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, s); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
		return nil

	case OutputMarkdown:
		if err := WriteMarkdown(w, s); err != nil {
			return fmt.Errorf("writing Markdown: %w", err)
		}
		return nil

	default:
		return NewReporter(w, useColors).Render(s)
	}
}
