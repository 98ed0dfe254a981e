package hanscan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/farcloser/primordium/fault"
	"golang.org/x/sync/errgroup"

	"github.com/farcloser/hanscan/internal/extract"
	"github.com/farcloser/hanscan/internal/locate"
	"github.com/farcloser/hanscan/internal/types"
)

/*
Usage:

result, err := hanscan.Extract(ctx, "./web", hanscan.DefaultOptions())
for _, record := range result.Records {
    fmt.Printf("%s:%d %s\n", record.Filename, record.Line, record.Message)
}

// Comment stripping, whole lines, test directories skipped
opts := hanscan.OptionsForPolicy(hanscan.PolicyFullLine)
result, err := hanscan.Extract(ctx, "./web", opts)

*/

// ErrUnknownPolicy is returned by ParsePolicy.
var ErrUnknownPolicy = errors.New("unknown policy")

// Extract scans every target under root and returns the records in discovery order.
//
// Only a root that cannot be listed is an error. A file that cannot be read is logged, listed in
// Result.Failures, and contributes no records.
func Extract(ctx context.Context, root string, opts Options) (*Result, error) {
	applyDefaults(&opts)

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", fault.ErrReadFailure, root, err)
	}

	resolved, err := locate.Resolve(abs)
	if err != nil {
		return nil, err
	}

	files, err := locate.Files(resolved, locate.Options{
		Extensions: opts.Extensions,
		Exclude:    opts.Exclude,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("hanscan.Extract", "root", abs, "files", len(files), "policy", opts.Policy.String())

	scanner := opts.Policy.scanner()
	records := make([][]types.MatchRecord, len(files))
	failures := make([]error, len(files))

	var (
		progress atomic.Int64
		group    errgroup.Group
	)

	group.SetLimit(opts.Workers)

	for idx, path := range files {
		group.Go(func() error {
			found, err := scanFile(ctx, resolved, path, scanner, opts.Timeout)
			if err != nil {
				slog.Error("reading file", "file", path, "error", err)

				failures[idx] = err
			} else {
				records[idx] = found
			}

			done := progress.Add(1)
			if opts.Progress != nil {
				opts.Progress(int(done), len(files), path)
			}

			return nil
		})
	}

	// Tasks never return an error: failures are per file.
	_ = group.Wait()

	result := &Result{
		Root:  abs,
		Files: files,
	}

	for idx := range files {
		if failures[idx] != nil {
			result.Failures = append(result.Failures, types.FileFailure{Path: files[idx], Err: failures[idx]})

			continue
		}

		result.Records = append(result.Records, records[idx]...)
	}

	return result, nil
}

func applyDefaults(opts *Options) {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	if opts.Timeout < 0 {
		opts.Timeout = 0
	}
}

func scanFile(
	ctx context.Context,
	root, path string,
	scanner extract.Scanner,
	timeout time.Duration,
) ([]types.MatchRecord, error) {
	content, err := readFile(ctx, path, timeout)
	if err != nil {
		return nil, err
	}

	return scanner.Scan(displayName(root, path), string(content)), nil
}

// displayName strips the root from path: "/src/app.ts".
func displayName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	return "/" + filepath.ToSlash(rel)
}

type readOutcome struct {
	data []byte
	err  error
}

func readFile(ctx context.Context, path string, timeout time.Duration) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if timeout == 0 {
		data, err := os.ReadFile(path) //nolint:gosec // scan targets come from the walked tree
		if err != nil {
			return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
		}

		return data, nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan readOutcome, 1)

	go func() {
		data, err := os.ReadFile(path) //nolint:gosec // scan targets come from the walked tree
		done <- readOutcome{data: data, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, out.err)
		}

		return out.data, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: after %v", fault.ErrTimeout, timeout)
		}

		return nil, ctx.Err()
	}
}
