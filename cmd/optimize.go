// Package cmd — optimize run.
// Builds the configuration from the flags and the working directory, wires
// the pipeline (scan → transcode → write) and runs it over the directory.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/gaurav-prasanna/webpify/core"
	"github.com/gaurav-prasanna/webpify/core/batch"
	"github.com/gaurav-prasanna/webpify/core/output"
	"github.com/gaurav-prasanna/webpify/core/scan"
	"github.com/gaurav-prasanna/webpify/core/transcode"
	"github.com/spf13/cobra"
)

func runOptimize(cmd *cobra.Command, opts *options) error {
	// Flag errors print usage; failures past this point do not.
	cmd.SilenceUsage = true

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("%w: %v", scan.ErrDirNotFound, err)
	}

	cfg := core.Config{
		Dir:          wd,
		MobileWidth:  opts.mobileWidth,
		DesktopWidth: opts.desktopWidth,
	}

	writer, err := output.New(cfg.Dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	runner := &batch.Runner{
		Scanner:    scan.New(),
		Transcoder: transcode.New(),
		Writer:     writer,
		Log:        newLogger(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	}

	// Per-image failures are logged by the runner; only startup
	// failures come back as an error.
	_, err = runner.Run(context.Background(), cfg)
	return err
}
