// Package report serializes match records to a spreadsheet.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/farcloser/hanscan/internal/types"
)

const (
	// SheetName is the only worksheet of the report.
	SheetName = "sheet1"
	// Extension of the report file.
	Extension = ".xlsx"

	fallbackName = "hanscan"
	defaultSheet = "Sheet1"
	stagingSheet = "records"
)

var (
	// ErrWriteFailure wraps every failure to persist the report.
	ErrWriteFailure = errors.New("cannot write report")
	// ErrNoRecords is returned when asked to write an empty report.
	ErrNoRecords = errors.New("no records to write")
	// ErrUnsupportedExtension is returned for an output path the workbook cannot be saved as.
	ErrUnsupportedExtension = errors.New("unsupported report extension")
)

// Extensions the workbook can be saved as.
func Extensions() []string {
	return []string{".xlsx", ".xlsm", ".xltm", ".xltx", ".xlam"}
}

// ValidatePath checks that path ends with an extension the workbook can be saved as.
func ValidatePath(path string) error {
	if !slices.Contains(Extensions(), strings.ToLower(filepath.Ext(path))) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedExtension, path, strings.Join(Extensions(), ", "))
	}

	return nil
}

// Header returns the column keys, in order.
func Header() []string {
	return []string{"filename", "line", "message"}
}

// OutputPath derives the report file name from the scanned root: "<base name>.xlsx".
// The path is relative, so the file lands in the current working directory.
func OutputPath(root string) string {
	base := filepath.Base(filepath.Clean(root))
	if base == string(filepath.Separator) || base == "." || base == "" {
		base = fallbackName
	}

	return base + Extension
}

// Write stores records in a single-sheet workbook at path, after a header row, in input order.
func Write(path string, records []types.MatchRecord) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	book := excelize.NewFile()
	defer book.Close()

	// Sheet names compare case-insensitively, so a rename that only changes case is ignored.
	for _, rename := range [][2]string{{defaultSheet, stagingSheet}, {stagingSheet, SheetName}} {
		if err := book.SetSheetName(rename[0], rename[1]); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
		}
	}

	stream, err := book.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}

	header := Header()
	row := make([]any, len(header))

	for i, key := range header {
		row[i] = key
	}

	if err = stream.SetRow("A1", row); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}

	for idx, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
		}

		if err = stream.SetRow(cell, []any{record.Filename, record.Line, record.Message}); err != nil {
			return fmt.Errorf("%w: %s: row %d: %w", ErrWriteFailure, path, idx+2, err)
		}
	}

	if err = stream.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}

	if err = book.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}

	return nil
}
