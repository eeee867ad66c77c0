// Package cliout writes duckurl's results and error reports.
//
// Results go to stdout, reports go to stderr, and the two never mix: a run
// either prints exactly one result line or a report.
//
// # Output Formats
//
//   - default: the canonical URL on one line; errors as a human-readable
//     report with one "Caused by" entry per wrapped error
//   - json: {"url":"..."} on one line; errors as a single JSON object
//
//	p := cliout.NewPrinter(cliout.FormatDefault, os.Stdout, os.Stderr)
//	u, err := duckapi.RandomDuckURL(ctx, client, endpoint)
//	if err != nil {
//		p.ErrorReport(err, string(duckapi.KindOf(err)))
//		return
//	}
//	_ = p.PrintURL(u)
//
// # Colors
//
// ANSI colors are used only when the target is a terminal and NO_COLOR is
// not set.
package cliout
