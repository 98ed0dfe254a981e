package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/hanscan/version"
)

func main() {
	ctx := context.Background()

	appl := &cli.Command{
		Name:      version.Name(),
		Usage:     "Extract Korean text from a source tree into a spreadsheet",
		Version:   version.Version() + " " + version.Commit(),
		ArgsUsage: "[directory]",
		Flags:     scanFlags(),
		Action:    scanAction,
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
