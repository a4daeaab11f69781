package main

import (
	"github.com/spf13/cobra"

	"candidates/internal/crawler"
	"candidates/internal/models"
)

func newExtractCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <page.html>",
		Short: "Extract candidates from a saved election results page",
		Long: `Extract reads a saved HTML page, finds the election tables for the
office and emits one candidate per usable row. Rows that cannot be read
are skipped; run with --log-level debug to see why.

Examples:
  candidates extract house_2016.html
  candidates extract senate_2016.html --office senate --format json`,
		Args: cobra.ExactArgs(1),
		RunE: a.runExtract,
	}

	cmd.Flags().String("office", "house", "Office whose tables are read: house or senate")

	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	office, _ := models.ParseOffice(a.cfg.Extractor.Office)

	client := crawler.NewClientWithDeps(crawler.NewParserWithConfig(a.cfg.Extractor, a.log))

	candidates, err := client.CrawlFile(path, office)
	if err != nil {
		return err
	}

	a.log.Info("extracted candidates", "path", path, "office", office, "count", len(candidates))

	return a.writeCandidates(cmd, candidates, path, true)
}
