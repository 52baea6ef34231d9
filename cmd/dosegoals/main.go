// Package main provides the CLI entry point for dosegoals-go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dosegoals-go/pkg/dosegoals"
)

var (
	verbose      bool
	templatesDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dosegoals [input.xlsx [output.xml [preview-id]]]",
		Short: "Convert clinical goal spreadsheets to DoseObjectives XML",
		Long: `dosegoals converts an Excel constraint table (sheet "Constraints") into
DoseObjectives template XML for the treatment planning system importer.

With no arguments, every workbook in the configured templates directory is
converted, each XML written beside its source.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&templatesDir, "templates-dir", "", "Directory scanned in batch mode (overrides config)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := dosegoals.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if templatesDir != "" {
		cfg.TemplatesDir = templatesDir
	}

	converter := dosegoals.NewConverter(cfg, log)

	// Batch mode: convert everything in the templates directory.
	if len(args) == 0 {
		summary, err := converter.ConvertDir(cfg.TemplatesDir, nil)
		if err != nil {
			return err
		}
		for _, f := range summary.Files {
			if f.Err != nil {
				fmt.Fprintf(os.Stderr, "failed: %s: %v\n", f.Input, f.Err)
			} else {
				fmt.Printf("written: %s\n", f.Report.Output)
			}
		}
		fmt.Println(summary)
		if summary.Failed > 0 {
			return fmt.Errorf("%d file(s) failed", summary.Failed)
		}
		return nil
	}

	input := args[0]
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", input)
	}

	output := strings.TrimSuffix(input, filepath.Ext(input)) + ".xml"
	if len(args) > 1 {
		output = args[1]
	}

	opts := dosegoals.Options{}
	if len(args) > 2 {
		opts.PreviewID = args[2]
	}

	report, err := converter.ConvertFile(input, output, opts)
	if err != nil {
		return err
	}

	for _, rowErr := range report.RowErrors {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", input, rowErr)
	}
	fmt.Printf("written: %s\n", output)
	return nil
}
