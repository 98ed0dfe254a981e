// Package output converts run results into the map structures printed by the formatters.
package output

import (
	"fmt"

	"github.com/farcloser/hanscan"
	"github.com/farcloser/hanscan/internal/summary"
)

// SummaryToMap converts a run summary into the canonical map printed at the end of a scan.
// reportPath is empty when no report was written.
func SummaryToMap(sum summary.Summary, policy hanscan.Policy, reportPath string) map[string]any {
	meta := map[string]any{
		"policy":             policy.String(),
		"files":              sum.Files,
		"files_with_matches": sum.FilesWithMatches,
		"records":            sum.Records,
		"failures":           sum.Failures,
	}

	if sum.FilesWithMatches > 0 {
		meta["density"] = map[string]any{
			"mean_per_file": fmt.Sprintf("%.2f", sum.MeanPerFile),
			"max_per_file":  sum.MaxPerFile,
			"busiest_file":  sum.Busiest,
		}
	}

	if reportPath != "" {
		meta["report"] = reportPath
	}

	return meta
}

// FailuresToList lists the unreadable files with their cause.
func FailuresToList(result *hanscan.Result) []any {
	failures := make([]any, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, map[string]any{
			"file":  failure.Path,
			"error": failure.Err.Error(),
		})
	}

	return failures
}
