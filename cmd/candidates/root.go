package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"candidates/internal/config"
	"candidates/internal/formatter"
	"candidates/internal/logger"
	"candidates/internal/models"
)

// app holds the global flags and the state resolved from them.
type app struct {
	configPath string
	format     string
	output     string
	logLevel   string
	sign       bool

	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "candidates",
		Short: "Normalize election candidate records",
		Long: `candidates normalizes raw candidate records (names, offices, states and
districts) and renders them as JSON or wikitext infoboxes.

Usage:
  candidates build <records.yaml> [flags]
  candidates extract <page.html> [--office house|senate] [flags]
  candidates verify <snippet.txt>`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&a.format, "format", "", "Output format: infobox or json")
	flags.StringVarP(&a.output, "output", "o", "", "Output file (default: stdout)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&a.sign, "sign", false, "Append a provenance block to infobox output")

	root.AddCommand(newBuildCmd(a), newExtractCmd(a), newVerifyCmd(a))

	return root
}

// setup loads the config and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()

	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	flags := cmd.Flags()

	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}

	if flags.Changed("output") {
		cfg.Output.Path = a.output
	}

	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}

	if flags.Changed("sign") {
		cfg.Output.Sign = a.sign
	}

	if office := flags.Lookup("office"); office != nil && office.Changed {
		cfg.Extractor.Office = office.Value.String()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.Logging.Level)
	a.log.Debug("configuration loaded", "config", cfg.String())

	return nil
}

// writeCandidates renders candidates in the configured format and writes
// them to the configured output.
func (a *app) writeCandidates(cmd *cobra.Command, candidates []*models.Candidate, source string, validated bool) error {
	var content string

	switch a.cfg.Output.Format {
	case config.FormatJSON:
		if a.cfg.Output.Sign {
			a.log.Warn("provenance blocks are only written for infobox output")
		}

		if candidates == nil {
			candidates = []*models.Candidate{}
		}

		data, err := json.MarshalIndent(candidates, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal candidates: %w", err)
		}

		content = string(data)
	default:
		f := &formatter.Formatter{
			Template:  a.cfg.Output.Template,
			Source:    filepath.Base(source),
			AlignKeys: a.cfg.Output.AlignKeys,
		}

		content = f.RenderAll(candidates)
		if a.cfg.Output.Sign {
			content = f.Sign(content, validated)
		}
	}

	if a.cfg.Output.Path == "" {
		return writeString(cmd.OutOrStdout(), content)
	}

	if err := writeOutputFile(a.cfg.Output.Path, content); err != nil {
		return err
	}

	a.log.Info("wrote candidates", "path", a.cfg.Output.Path, "count", len(candidates))

	return nil
}

// writeOutputFile writes content to path, creating parent directories. A failed
// close is reported like a failed write.
func writeOutputFile(path, content string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return writeString(file, content)
}

func writeString(w io.Writer, content string) error {
	if content != "" && content[len(content)-1] != '\n' {
		content += "\n"
	}

	if _, err := io.WriteString(w, content); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
