package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/moraes/isbn"
	"github.com/spf13/cobra"

	"github.com/gmoura/cita/internal/abnt"
	"github.com/gmoura/cita/internal/config"
	"github.com/gmoura/cita/internal/openlibrary"
)

var isbnDumpJSON string

var isbnCmd = &cobra.Command{
	Use:   "isbn <isbn>",
	Short: "Render an ABNT citation for a book by ISBN",
	Long: `Fetch book metadata from Open Library and render it as an ABNT
NBR 6023:2025 e-book citation.

Both ISBN-10 and ISBN-13 are accepted, with or without hyphens; the
checksum is verified and ISBN-10 values are upgraded to ISBN-13 for
display.

Examples:
  cita isbn 9788535902778
  cita isbn 0-14-044913-6`,
	Args: cobra.ExactArgs(1),
	RunE: runISBN,
}

func init() {
	rootCmd.AddCommand(isbnCmd)
	isbnCmd.Flags().StringVar(&isbnDumpJSON, "dump-json", "", "Write the raw book entry to this file before normalizing")
}

func runISBN(cmd *cobra.Command, args []string) error {
	norm, err := normalizeISBN(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return err
	}

	client := openlibrary.NewClient(
		openlibrary.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
		openlibrary.WithLogger(newLogger()),
	)

	if isbnDumpJSON != "" {
		raw, err := client.GetBookRaw(cmd.Context(), norm)
		if err != nil {
			return err
		}
		if err := dumpJSON(isbnDumpJSON, raw); err != nil {
			return err
		}
	}

	book, err := client.GetBook(cmd.Context(), norm)
	if err != nil {
		return err
	}

	outputCitation(abnt.FormatMonograph(book, time.Now()))
	return nil
}

// normalizeISBN strips separators, verifies the checksum and upgrades
// ISBN-10 values to the canonical ISBN-13 form.
func normalizeISBN(raw string) (string, error) {
	s := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(raw))
	switch len(s) {
	case 10:
		if !isbn.Validate10(s) {
			return "", fmt.Errorf("invalid ISBN-10 checksum: %s", raw)
		}
		return isbn.To13(s)
	case 13:
		if !isbn.Validate13(s) {
			return "", fmt.Errorf("invalid ISBN-13 checksum: %s", raw)
		}
		return s, nil
	default:
		return "", fmt.Errorf("ISBN must have 10 or 13 digits, got %d: %s", len(s), raw)
	}
}
