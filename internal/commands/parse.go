package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/credlens/statement-parser/internal/config"
	"github.com/credlens/statement-parser/internal/engine"
	"github.com/credlens/statement-parser/internal/extractor"
	"github.com/credlens/statement-parser/internal/models"
	"github.com/credlens/statement-parser/internal/writer"
)

func newParseCommand() *cobra.Command {
	var csvOut string
	var header bool

	cmd := &cobra.Command{
		Use:   "parse <input.pdf> [input2.pdf ...]",
		Short: "Extract statement fields from PDF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			eng := engine.New(engine.WithAcquirer(extractor.NewPipeline(extractor.Config{
				OCRMinTextLen: cfg.OCR.MinTextLen,
				OCRDPI:        cfg.OCR.DPI,
				PdftoppmPath:  cfg.OCR.PdftoppmPath,
				TesseractPath: cfg.OCR.TesseractPath,
			})))

			for _, inputPath := range args {
				if err := processFile(cmd, eng, inputPath, csvOut, header); err != nil {
					return fmt.Errorf("processing %s: %w", inputPath, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvOut, "csv", "", "also write transactions to this CSV path (per-file .csv naming when multiple inputs)")
	cmd.Flags().BoolVar(&header, "header", true, "include statement metadata rows in CSV output")

	return cmd
}

func processFile(cmd *cobra.Command, eng *engine.Engine, inputPath, csvOut string, header bool) error {
	if strings.ToLower(filepath.Ext(inputPath)) != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", filepath.Ext(inputPath))
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result := eng.Parse(cmd.Context(), data)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if result.Bank == models.BankUnknown {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s did not match a supported issuer\n", inputPath)
	}

	if csvOut != "" {
		outPath := csvOut
		if len(cmd.Flags().Args()) > 1 {
			base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
			outPath = base + ".csv"
		}
		w := &writer.CSVWriter{IncludeHeader: header}
		if err := w.WriteToFile(outPath, result); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "CSV written to %s\n", outPath)
	}

	return nil
}
