// Package summary computes run statistics over the extracted records.
package summary

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/hanscan/internal/types"
)

// Summary describes one scan.
type Summary struct {
	Files            int
	FilesWithMatches int
	Records          int
	Failures         int

	// MeanPerFile and MaxPerFile only count files with at least one record.
	MeanPerFile float64
	MaxPerFile  int
	// Busiest is the file with the most records. Ties go to the file discovered first.
	Busiest string
}

// Summarize aggregates records, which must be in discovery order.
func Summarize(files, failures int, records []types.MatchRecord) Summary {
	result := Summary{
		Files:    files,
		Records:  len(records),
		Failures: failures,
	}

	var (
		names  []string
		counts []float64
	)

	index := make(map[string]int)

	for _, record := range records {
		idx, ok := index[record.Filename]
		if !ok {
			idx = len(names)
			index[record.Filename] = idx
			names = append(names, record.Filename)
			counts = append(counts, 0)
		}

		counts[idx]++
	}

	result.FilesWithMatches = len(names)

	if len(counts) == 0 {
		return result
	}

	busiest := floats.MaxIdx(counts)

	result.MeanPerFile = stat.Mean(counts, nil)
	result.MaxPerFile = int(counts[busiest])
	result.Busiest = names[busiest]

	return result
}
