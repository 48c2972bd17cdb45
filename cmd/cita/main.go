// Package main provides the cita CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gmoura/cita/internal/crossref"
	"github.com/gmoura/cita/internal/openlibrary"
)

// Version is set at build time via ldflags
var Version = "dev"

// verbose enables debug logging of HTTP traffic
var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "cita",
	Short: "ABNT NBR 6023:2025 citation generator",
	Long: `cita fetches bibliographic metadata for scholarly works (by DOI,
from Crossref) and books (by ISBN, from Open Library) and renders each
record as a citation string following ABNT NBR 6023:2025.

The output embeds <strong> and <i> emphasis tags as literal text, ready
to paste into rich-text reference lists.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for CITA_MAILTO, CITA_TIMEOUT)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log HTTP traffic to stderr")
	rootCmd.Version = Version
}

// newLogger returns the request-tracing logger for the gateway clients.
func newLogger() zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// exitCode maps an error to the CLI exit code.
func exitCode(err error) int {
	if crossref.IsNotFound(err) || openlibrary.IsNotFound(err) {
		return ExitNotFound
	}
	if _, ok := crossref.IsMissingField(err); ok {
		return ExitDataError
	}
	if _, ok := openlibrary.IsMissingField(err); ok {
		return ExitDataError
	}
	var unsupported *crossref.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return ExitUnsupported
	}
	return ExitError
}
