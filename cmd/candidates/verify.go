package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"candidates/pkg/metadata"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <snippet.txt>",
		Short: "Check the provenance block of a signed snippet",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runVerify,
	}
}

func (a *app) runVerify(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snippet: %w", err)
	}

	meta, err := metadata.Verify(string(content))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK %s: %d records, validated=%t, signed %s\n",
		args[0], meta.Records, meta.Validation, meta.LastModify.Format(time.RFC3339))

	return nil
}
