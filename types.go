// Package hanscan extracts Korean text embedded in source trees for localization audits.
package hanscan

import (
	"fmt"
	"runtime"
	"time"

	"github.com/farcloser/hanscan/internal/extract"
	"github.com/farcloser/hanscan/internal/types"
)

// DefaultTimeout bounds the read of a single file.
const DefaultTimeout = 30 * time.Second

// TestDirectories is the extra exclusion applied by PolicyFullLine.
const TestDirectories = "**/test/**"

// Policy selects how Korean text is extracted from each line.
type Policy int

const (
	// PolicyQuoted extracts the Hangul runs found between the outermost quotes of a line (default).
	PolicyQuoted Policy = iota
	// PolicyFullLine strips comments, then reports every line holding Hangul in full.
	PolicyFullLine
)

func (p Policy) String() string {
	switch p {
	case PolicyQuoted:
		return "quoted"
	case PolicyFullLine:
		return "fullline"
	}

	return "unknown"
}

// ParsePolicy converts a string to a Policy value.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "quoted", "":
		return PolicyQuoted, nil
	case "fullline":
		return PolicyFullLine, nil
	default:
		return 0, fmt.Errorf("%w %q (valid: quoted, fullline)", ErrUnknownPolicy, s)
	}
}

func (p Policy) scanner() extract.Scanner {
	if p == PolicyFullLine {
		return extract.FullLine{}
	}

	return extract.Quoted{}
}

// Options configures a run. It is derived once from the invocation and never mutated afterwards.
type Options struct {
	Policy Policy

	// Extensions to scan, without the dot. Empty means js, jsx, ts, tsx and java.
	Extensions []string
	// Exclude holds doublestar globs relative to the root. node_modules is always excluded.
	Exclude []string

	// Workers caps the number of files read at once.
	Workers int
	// Timeout bounds each file read. Zero disables it.
	Timeout time.Duration

	// Progress, when set, is called after each file, possibly from several goroutines.
	Progress func(done, total int, path string)
}

// DefaultOptions returns the options of the quoted policy.
func DefaultOptions() Options {
	return OptionsForPolicy(PolicyQuoted)
}

// OptionsForPolicy returns the default Options for the given policy.
// The full line policy also skips every directory named "test".
func OptionsForPolicy(policy Policy) Options {
	opts := Options{
		Policy:  policy,
		Workers: runtime.NumCPU(),
		Timeout: DefaultTimeout,
	}

	if policy == PolicyFullLine {
		opts.Exclude = []string{TestDirectories}
	}

	return opts
}

// Result holds everything a run found.
type Result struct {
	// Root is the absolute scanned directory, as given: a symlinked root keeps its link name.
	Root string
	// Files are the scan targets, sorted, under the resolved root.
	Files []string
	// Records are flattened in Files order.
	Records []types.MatchRecord
	// Failures lists the files that could not be read, in Files order.
	Failures []types.FileFailure
}
