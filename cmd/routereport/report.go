package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/routereport"
	"github.com/yacobolo/routereport/internal/console"
	"github.com/yacobolo/routereport/internal/log"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the post-generation summary",
	Long: `Print the generated components, next steps, tips and documentation
pointers for a freshly generated route.`,
	Example: `  routereport report --name grades --type list --filters yes --table no --modal yes
  routereport report --name grades --format markdown > NEXT_STEPS.md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd, loadConfig(cmd))
	},
}

func init() {
	addReportFlags(reportCmd)
}

// addReportFlags registers the template values and output controls.
func addReportFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "Route name (directory of the generated route)")
	f.String("display-name", "", "Human readable route name")
	f.String("type", "", "Page type, e.g. list or detail")
	f.String("filters", "no", "Cascading filters were generated (yes|no)")
	f.String("table", "no", "Sortable table was generated (yes|no)")
	f.String("modal", "no", "Modal dialog was generated (yes|no)")
	f.String("preview-url", routereport.DefaultPreviewBaseURL, "Base URL of the local dev server")
	f.String("routes-dir", routereport.DefaultRoutesDir, "Routes directory of the target project")
	f.String("format", string(routereport.OutputText), "Output format: text|json|markdown")
	f.String("color", console.ColorAuto, "Color output: auto|always|never")
}

// runReport is shared between `routereport` and `routereport report`.
// A configuration error is logged and reporting continues with whatever was
// loaded: the hook must never fail the scaffolding run.
func runReport(cmd *cobra.Command, configErr error) error {
	settings := buildOutputSettings()
	logger := log.New(cmd.ErrOrStderr(), settings.Verbose)

	if configErr != nil {
		logger.Warn("configuration not fully loaded, using defaults", "error", configErr)
	}

	snap := buildSnapshot()
	opts := buildOptions()
	logger.Debug("resolved snapshot",
		"route", snap.RouteName,
		"display_name", snap.DisplayName,
		"type", snap.RouteType,
		"filters", snap.IncludeFilters,
		"table", snap.IncludeTable,
		"modal", snap.IncludeModal,
	)

	if settings.Quiet {
		logger.Debug("quiet mode, nothing written")
		return nil
	}

	out := cmd.OutOrStdout()
	format := routereport.DetermineOutputFormat(settings.Format)
	useColors := console.ShouldUseColors(settings.Color, out)
	logger.Debug("rendering report", "format", format, "colors", useColors, "preview_url", opts.PreviewURL(snap.RouteName))

	summary := routereport.BuildSummary(snap, opts)
	if err := routereport.WriteOutput(out, summary, format, useColors); err != nil {
		logger.Warn("report not written", "error", err)
	}

	return nil
}
