package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "qrgen",
	Short:         "qrgen - text to QR code SVG, over HTTP or on the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	// With no subcommand the binary runs the HTTP service.
	RunE: runServe,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
}
