package extract

import (
	"strings"

	"github.com/farcloser/hanscan/internal/types"
)

const quoteChars = "`'\""

// Quoted reports the Hangul found between the outermost quotes of each line.
type Quoted struct{}

// Name implements Scanner.
func (Quoted) Name() string {
	return "quoted"
}

// Scan implements Scanner.
func (Quoted) Scan(filename, content string) []types.MatchRecord {
	return scanLines(filename, content, QuotedMessage)
}

// QuotedMessage extracts the message of a single line.
//
// The span runs from the first to the last quote character on the line, whichever kind they are.
// Hangul runs inside the span are joined with a space. When the span holds none, or the line has
// fewer than two quote characters, the runs of the whole line are concatenated as is.
func QuotedMessage(line string) string {
	first := strings.IndexAny(line, quoteChars)
	last := strings.LastIndexAny(line, quoteChars)

	if first >= 0 && last > first {
		if runs := hangulRuns(line[first+1 : last]); len(runs) > 0 {
			return strings.Join(runs, " ")
		}
	}

	return strings.Join(hangulRuns(line), "")
}
