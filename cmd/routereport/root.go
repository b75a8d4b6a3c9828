package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "routereport",
	Short: "Post-generation summary for the Kaizen route template",
	Long: `Print what the route template generated and the manual steps left to do.
Values are substituted by the template host and shown verbatim; the hook
never fails, so it cannot block scaffolding.`,
	// Default behavior: run report when no subcommand is given.
	// We must call loadConfig here because PreRunE of reportCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd, loadConfig(cmd))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log resolved configuration to stderr")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")

	// The root command reports too, so it accepts the report flags
	addReportFlags(rootCmd)

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
