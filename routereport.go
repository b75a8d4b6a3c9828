// Package routereport prints the post-generation summary for the route
// scaffolding template.
//
// After the template host has substituted its variables, the hook reports
// which components were generated and which manual steps remain. The report
// is built from a read-only Snapshot and rendered in one of several formats;
// nothing is validated and every value is shown verbatim.
//
// # Reporting
//
//	snap := routereport.Snapshot{
//		RouteName:      "grades",
//		DisplayName:    "Grade Overview",
//		RouteType:      "list",
//		IncludeFilters: routereport.ParseFlag("yes"),
//		IncludeTable:   routereport.ParseFlag("no"),
//	}
//	summary := routereport.BuildSummary(snap, routereport.Options{})
//	err := routereport.NewReporter(os.Stdout, true).Render(summary)
//
// # Formats
//
// The same summary can be exported for tooling or documentation:
//
//	format := routereport.DetermineOutputFormat("json")
//	err := routereport.WriteOutput(os.Stdout, summary, format, false)
//
// # CLI Tool
//
// Install the hook binary with:
//
//	go install github.com/yacobolo/routereport/cmd/routereport@latest
//
// and call it from the template's post_gen_project hook:
//
//	routereport --name "{{ cookiecutter.route_name }}" \
//	  --type "{{ cookiecutter.route_type }}" \
//	  --filters "{{ cookiecutter.include_filters }}"
package routereport
