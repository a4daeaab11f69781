package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"candidates/internal/models"
	"candidates/internal/normalizer"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build <records.yaml>",
		Short: "Normalize a list of raw candidate records",
		Long: `Build reads a YAML or JSON list of raw records and normalizes each one
into a candidate. Keys may use the long form (name, office, party, state,
district) or the abbreviated form (can_nam, can_off, can_par_aff,
can_off_sta, can_off_dis).

Examples:
  candidates build records.yaml
  candidates build records.json --format json -o out/candidates.json`,
		Args: cobra.ExactArgs(1),
		RunE: a.runBuild,
	}
}

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	records, err := models.ParseRecords(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	a.log.Info("read records", "path", path, "count", len(records))

	processor := normalizer.NewProcessor()
	candidates := make([]*models.Candidate, 0, len(records))
	skipped := 0

	for i, raw := range records {
		c, err := processor.Build(raw)
		if err == nil {
			candidates = append(candidates, c)

			continue
		}

		var verr *normalizer.ValidationError
		if !errors.As(err, &verr) || !a.cfg.Normalizer.ContinueOnValidationErrors {
			return fmt.Errorf("record %d: %w", i, err)
		}

		skipped++

		a.log.Warn("skipping invalid record", "record", i, "field", verr.Field, "error", verr.Err)
	}

	a.log.Info("built candidates", "count", len(candidates), "skipped", skipped)

	return a.writeCandidates(cmd, candidates, path, skipped == 0)
}
