// Package cmd implements the CLI for webpify using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// options holds the raw flag values of one invocation.
type options struct {
	mobileWidth  string
	desktopWidth string
}

// newRootCmd builds the webpify command. Flags are bound to a fresh
// options value so each command instance is independent.
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "webpify -m <width> -d <width>",
		Short: "webpify — batch convert JPEG images into mobile and desktop WebP renditions",
		Long: `webpify is a tool to automate the workflow of resizing, converting and
optimizing images.

Every file in the current directory whose name contains ".jpg" is converted
into two WebP files at quality 70:
  <name>-m.webp  mobile rendition, resized to 2x the mobile width
  <name>.webp    desktop rendition, resized to 2x the desktop width

Examples:
  webpify --mobile-width 375 --desktop-width 1200
  webpify -m 400 -d 960`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mobileWidth, "mobile-width", "m", "", "Size on mobile screen (required)")
	cmd.Flags().StringVarP(&opts.desktopWidth, "desktop-width", "d", "", "Size on desktop screen (required)")
	_ = cmd.MarkFlagRequired("mobile-width")
	_ = cmd.MarkFlagRequired("desktop-width")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
