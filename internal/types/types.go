// Package types holds the records shared by the scanner, the orchestrator and the report writer.
package types

// MatchRecord is one line of a scanned file that carries Korean text.
type MatchRecord struct {
	// Filename is the path relative to the project root, slash separated, with a leading "/".
	Filename string
	// Line is 1-based.
	Line int
	// Message is the extracted text. Never empty.
	Message string
}

// FileFailure records a scan target that could not be read.
type FileFailure struct {
	Path string
	Err  error
}
