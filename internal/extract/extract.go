// Package extract turns source file content into Korean text match records.
//
// Two line policies exist. Quoted pulls the Hangul runs out of the quoted part of each line.
// FullLine strips comments first and then reports every line that still carries Hangul, whole.
package extract

import (
	"regexp"
	"strings"

	"github.com/farcloser/hanscan/internal/types"
)

const (
	// SyllableFirst is the first code point of the Hangul syllables block.
	SyllableFirst = '가'
	// SyllableLast is the last assigned code point of the Hangul syllables block.
	SyllableLast = '힣'
)

//nolint:gochecknoglobals // compiled once
var hangulRun = regexp.MustCompile(`[\x{AC00}-\x{D7A3}]+`)

// Scanner produces the match records for one file.
// Implementations hold no state: the output depends only on the arguments.
type Scanner interface {
	Name() string
	Scan(filename, content string) []types.MatchRecord
}

// ContainsHangul reports whether s holds at least one Hangul syllable.
func ContainsHangul(s string) bool {
	for _, r := range s {
		if r >= SyllableFirst && r <= SyllableLast {
			return true
		}
	}

	return false
}

func hangulRuns(s string) []string {
	return hangulRun.FindAllString(s, -1)
}

// scanLines numbers the lines of content from 1 and keeps the non-empty messages.
func scanLines(filename, content string, message func(line string) string) []types.MatchRecord {
	var records []types.MatchRecord

	for idx, line := range strings.Split(content, "\n") {
		msg := message(line)
		if msg == "" {
			continue
		}

		records = append(records, types.MatchRecord{
			Filename: filename,
			Line:     idx + 1,
			Message:  msg,
		})
	}

	return records
}
