// Package locate discovers the source files to scan under a project root.
package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/farcloser/primordium/fault"
)

// DependencyCache is excluded from every scan.
const DependencyCache = "**/node_modules/**"

var (
	// ErrNotDirectory is returned when the root exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrInvalidPattern is returned for malformed include or exclude globs.
	ErrInvalidPattern = errors.New("invalid glob pattern")
)

// Options selects which files are scan targets.
type Options struct {
	// Extensions without the leading dot. Empty means DefaultExtensions.
	Extensions []string
	// Exclude holds doublestar patterns matched against slash separated paths relative to the root.
	// DependencyCache is always added.
	Exclude []string
}

// DefaultExtensions returns the script and compiled language extensions scanned by default.
func DefaultExtensions() []string {
	return []string{"js", "jsx", "ts", "tsx", "java"}
}

// Pattern builds the include glob for the given extensions.
func Pattern(extensions []string) string {
	return "**/*.{" + strings.Join(extensions, ",") + "}"
}

// Resolve returns the absolute, symlink-free path of root and checks that it is a directory.
// Walked paths all live under the resolved root.
func Resolve(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", fault.ErrReadFailure, root, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", fault.ErrReadFailure, abs, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", fault.ErrReadFailure, resolved, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%q: %w", abs, ErrNotDirectory)
	}

	return resolved, nil
}

// Files walks root and returns the absolute paths of the scan targets, sorted.
// A symlinked root is followed, and the returned paths are under its target.
// A root that is missing, unreadable or not a directory is an error and nothing is returned.
func Files(root string, opts Options) ([]string, error) {
	abs, err := Resolve(root)
	if err != nil {
		return nil, err
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions()
	}

	include := Pattern(extensions)
	exclude := append([]string{DependencyCache}, opts.Exclude...)

	for _, pattern := range append([]string{include}, exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
	}

	var files []string

	err = filepath.WalkDir(abs, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path != abs && entry != nil && entry.IsDir() {
				slog.Warn("skipping unreadable directory", "path", path, "error", err)

				return filepath.SkipDir
			}

			return err
		}

		if path == abs {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if excluded(exclude, rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if !candidate(path, entry) || excluded(exclude, rel) {
			return nil
		}

		if ok, _ := doublestar.Match(include, rel); ok {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", fault.ErrReadFailure, abs, err)
	}

	slices.Sort(files)

	slog.Debug("locate.Files", "root", abs, "pattern", include, "files", len(files))

	return files, nil
}

// candidate keeps regular files and symlinks that do not resolve to a directory.
// Dangling links are kept so that the read failure gets reported.
func candidate(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}

	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	target, err := os.Stat(path)

	return err != nil || !target.IsDir()
}

func excluded(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	return false
}
