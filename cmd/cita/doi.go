package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gmoura/cita/internal/abnt"
	"github.com/gmoura/cita/internal/config"
	"github.com/gmoura/cita/internal/crossref"
)

var (
	doiPermissive bool
	doiDumpJSON   string
)

var doiCmd = &cobra.Command{
	Use:   "doi <doi>",
	Short: "Render an ABNT citation for a scholarly work by DOI",
	Long: `Fetch work metadata from Crossref and render it as an ABNT
NBR 6023:2025 citation.

Journal and proceedings articles are supported. Other work types fail
unless --permissive is set, in which case the raw Crossref message is
printed as JSON instead of a citation.

Examples:
  cita doi 10.11648/j.mlr.20251001.12
  cita doi 10.1038/nature12373 --permissive
  cita doi 10.1038/nature12373 --dump-json dbg/work.json`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

func init() {
	rootCmd.AddCommand(doiCmd)
	doiCmd.Flags().BoolVar(&doiPermissive, "permissive", false, "Print raw JSON for unrecognized work types instead of failing")
	doiCmd.Flags().StringVar(&doiDumpJSON, "dump-json", "", "Write the raw work message to this file before normalizing")
}

func runDOI(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return err
	}

	client := crossref.NewClient(
		crossref.WithMailto(cfg.Mailto),
		crossref.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
		crossref.WithLogger(newLogger()),
	)

	message, err := client.GetWork(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if doiDumpJSON != "" {
		if err := dumpJSON(doiDumpJSON, message); err != nil {
			return err
		}
	}

	var work *crossref.Work
	if doiPermissive || cfg.Permissive {
		work, err = crossref.NormalizePermissive(message)
	} else {
		work, err = crossref.Normalize(message)
	}
	if err != nil {
		return err
	}

	switch work.Kind {
	case crossref.WorkJournal:
		outputCitation(abnt.FormatJournalArticle(*work.Journal, time.Now()))
	case crossref.WorkProceedings:
		outputCitation(abnt.FormatProceedingsArticle(*work.Proceedings, time.Now()))
	case crossref.WorkRaw:
		return outputRawJSON(work.Raw)
	}
	return nil
}
