package extract

import (
	"regexp"
	"strings"

	"github.com/farcloser/hanscan/internal/types"
)

//nolint:gochecknoglobals // compiled once
var (
	lineComment  = regexp.MustCompile(`//.*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// FullLine reports every line that holds Hangul once comments are removed, trimmed but otherwise whole.
type FullLine struct{}

// Name implements Scanner.
func (FullLine) Name() string {
	return "fullline"
}

// Scan implements Scanner.
func (FullLine) Scan(filename, content string) []types.MatchRecord {
	return scanLines(filename, StripComments(content), func(line string) string {
		if !ContainsHangul(line) {
			return ""
		}

		return strings.TrimSpace(line)
	})
}

// StripComments removes "//" line comments, then "/* */" block comments, from content.
// Line breaks inside block comments survive so that line numbers do not move.
// This is purely textual: comment markers inside string literals or URLs are stripped as well.
func StripComments(content string) string {
	content = lineComment.ReplaceAllString(content, "")

	return blockComment.ReplaceAllStringFunc(content, func(comment string) string {
		return strings.Repeat("\n", strings.Count(comment, "\n"))
	})
}
