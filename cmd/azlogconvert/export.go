package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/michal-klimek/azure-log-converter/internal/cli"
	"github.com/michal-klimek/azure-log-converter/internal/convert"
)

func newExportCmd() *cobra.Command {
	var (
		formatStr  string
		outPath    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "export <source-file>",
		Short: "Export parsed entries to parquet, CSV, or JSONL",
		Long:  "Convert parsed entries to external formats for ingestion into analytics systems (DuckDB, pandas, BigQuery, etc.).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], formatStr, outPath, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&formatStr, "format", "", "output format: parquet, csv, jsonl (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file path (required)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output summary as JSON")
	_ = cmd.MarkFlagRequired("format")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runExport(src, formatStr, outPath string, jsonOutput bool) error {
	format, err := parseExportFormat(formatStr)
	if err != nil {
		return err
	}

	entries, err := convert.Parse(src)
	if err != nil {
		return classifyParseErr(err)
	}

	if err := convert.Export(entries, outPath, format); err != nil {
		return err
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"source":  src,
			"format":  formatStr,
			"output":  outPath,
			"entries": len(entries),
			"bytes":   info.Size(),
		})
	}

	_, _ = fmt.Fprintf(os.Stderr, "Exported %d entries -> %s (%d bytes)\n",
		len(entries), outPath, info.Size())
	return nil
}

func parseExportFormat(s string) (convert.ExportFormat, error) {
	switch s {
	case "parquet":
		return convert.FormatParquet, nil
	case "csv":
		return convert.FormatCSV, nil
	case "jsonl":
		return convert.FormatJSONL, nil
	default:
		return "", cli.NewUsageError(fmt.Sprintf("unsupported format %q: expected parquet, csv, or jsonl", s))
	}
}
