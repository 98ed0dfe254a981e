//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/hanscan"
	"github.com/farcloser/hanscan/internal/report"
)

var errInvalidArgCount = errors.New("expected at most one argument: directory to scan")

func scanFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "policy",
			Aliases: []string{"p"},
			Usage:   "Extraction policy: quoted (Hangul inside quotes), fullline (whole lines, comments stripped, test dirs skipped)",
			Value:   "quoted",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Additional glob to exclude, relative to the directory (repeatable, e.g. '**/dist/**')",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"j"},
			Usage:   "Number of files read concurrently",
			Value:   runtime.NumCPU(),
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Maximum time to read a single file (0 disables)",
			Value: hanscan.DefaultTimeout,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Report path (default: <directory name>.xlsx in the current directory)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Summary format: console, json, markdown",
			Value:   "console",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Do not print per-file progress",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
}

func scanAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 1 {
		return fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
	}

	if cmd.Bool("verbose") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	root := cmd.Args().First()
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving current directory: %w", err)
		}

		root = cwd
	}

	policy, err := hanscan.ParsePolicy(cmd.String("policy"))
	if err != nil {
		return err
	}

	formatName := cmd.String("format")
	if _, err = format.GetFormatter(formatName); err != nil {
		return err
	}

	outputPath := cmd.String("output")
	if outputPath != "" {
		if err = report.ValidatePath(outputPath); err != nil {
			return err
		}
	}

	opts := hanscan.OptionsForPolicy(policy)
	opts.Exclude = append(opts.Exclude, cmd.StringSlice("exclude")...)
	opts.Workers = max(cmd.Int("workers"), 1)
	opts.Timeout = cmd.Duration("timeout")

	if !cmd.Bool("quiet") {
		opts.Progress = func(done, total int, path string) {
			fmt.Fprintf(os.Stdout, "[%d/%d] %s\n", done, total, path)
		}
	}

	fmt.Fprintf(os.Stdout, "Project root: %s (%s policy, %d workers)\n", root, policy, opts.Workers)

	result, err := hanscan.Extract(ctx, root, opts)
	if err != nil {
		return fmt.Errorf("scanning %q: %w", root, err)
	}

	if outputPath == "" {
		outputPath = report.OutputPath(result.Root)
	}

	written := ""

	if len(result.Records) == 0 {
		slog.Info("no Korean text found", "root", result.Root, "files", len(result.Files))
	} else if err := report.Write(outputPath, result.Records); err != nil {
		// The scan itself succeeded: report the failure without failing the run.
		slog.Error("writing report", "path", outputPath, "error", err)
	} else {
		written = outputPath
	}

	return printSummary(result, policy, written, formatName)
}
