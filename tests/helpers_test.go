package tests_test

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
	"github.com/xuri/excelize/v2"
)

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectMissing returns a comparator verifying the output does not contain a substring.
func expectMissing(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("unexpected substring %q found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectRows returns a comparator verifying the report at path holds exactly the given rows,
// header included, on its single sheet.
func expectRows(path string, rows [][]string) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		book, err := excelize.OpenFile(path)
		if err != nil {
			testing.Log(fmt.Sprintf("cannot open report %q: %v", path, err))
			testing.Fail()

			return
		}

		defer book.Close()

		if sheets := book.GetSheetList(); !slices.Equal(sheets, []string{"sheet1"}) {
			testing.Log(fmt.Sprintf("expected a single sheet1, got %v", sheets))
			testing.Fail()

			return
		}

		got, err := book.GetRows("sheet1")
		if err != nil {
			testing.Log(fmt.Sprintf("cannot read rows: %v", err))
			testing.Fail()

			return
		}

		if !slices.EqualFunc(got, rows, slices.Equal[[]string]) {
			testing.Log(fmt.Sprintf("expected rows %q, got %q", rows, got))
			testing.Fail()
		}
	}
}

// expectNoFile returns a comparator verifying that nothing was written at path.
func expectNoFile(path string) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			testing.Log(fmt.Sprintf("expected no file at %q (stat error: %v)", path, err))
			testing.Fail()
		}
	}
}
