//nolint:wrapcheck
package main

import (
	"os"

	"github.com/farcloser/primordium/format"

	"github.com/farcloser/hanscan"
	"github.com/farcloser/hanscan/internal/output"
	"github.com/farcloser/hanscan/internal/summary"
)

func printSummary(result *hanscan.Result, policy hanscan.Policy, reportPath, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	sum := summary.Summarize(len(result.Files), len(result.Failures), result.Records)

	meta := output.SummaryToMap(sum, policy, reportPath)
	if len(result.Failures) > 0 {
		meta["failed_files"] = output.FailuresToList(result)
	}

	data := &format.Data{
		Object: result.Root,
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}
