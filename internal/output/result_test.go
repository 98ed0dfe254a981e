package output_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farcloser/hanscan"
	"github.com/farcloser/hanscan/internal/output"
	"github.com/farcloser/hanscan/internal/summary"
	"github.com/farcloser/hanscan/internal/types"
)

func TestSummaryToMap(t *testing.T) {
	t.Parallel()

	meta := output.SummaryToMap(summary.Summary{
		Files:            4,
		FilesWithMatches: 2,
		Records:          3,
		MeanPerFile:      1.5,
		MaxPerFile:       2,
		Busiest:          "/a.ts",
	}, hanscan.PolicyFullLine, "web.xlsx")

	assert.Equal(t, "fullline", meta["policy"])
	assert.Equal(t, 3, meta["records"])
	assert.Equal(t, "web.xlsx", meta["report"])
	assert.Equal(t, map[string]any{
		"mean_per_file": "1.50",
		"max_per_file":  2,
		"busiest_file":  "/a.ts",
	}, meta["density"])
}

func TestSummaryToMapWithoutMatches(t *testing.T) {
	t.Parallel()

	meta := output.SummaryToMap(summary.Summary{Files: 3}, hanscan.PolicyQuoted, "")

	assert.NotContains(t, meta, "density")
	assert.NotContains(t, meta, "report")
	assert.Equal(t, 0, meta["records"])
}

func TestFailuresToList(t *testing.T) {
	t.Parallel()

	result := &hanscan.Result{
		Failures: []types.FileFailure{{Path: "/root/x.ts", Err: errors.New("boom")}},
	}

	assert.Equal(t, []any{map[string]any{"file": "/root/x.ts", "error": "boom"}}, output.FailuresToList(result))
}
