package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/michal-klimek/azure-log-converter/internal/cli"
	"github.com/michal-klimek/azure-log-converter/internal/config"
	"github.com/michal-klimek/azure-log-converter/internal/convert"
)

func newConvertCmd() *cobra.Command {
	var (
		outDir     string
		zoneStr    string
		suffix     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "convert <source-file>",
		Short: "Split a log export into per-tag text files",
		Long: "Convert reads an Azure App Service log export (CSV with eventTickCount and " +
			"message columns, optionally gzip or zstd compressed), reconstructs logical " +
			"entries, and writes one text file per tag next to the source.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd)
			return runConvert(args[0], outDir, zoneStr, suffix, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: <source><suffix> next to the source)")
	cmd.Flags().StringVar(&zoneStr, "zone", config.DefaultZone, "display timezone for formatted timestamps")
	cmd.Flags().StringVar(&suffix, "suffix", config.DefaultSuffix, "output directory suffix")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output summary as JSON")

	return cmd
}

func runConvert(src, outDir, zoneStr, suffix string, jsonOutput bool) error {
	zone, err := time.LoadLocation(zoneStr)
	if err != nil {
		return cli.NewUsageError(fmt.Sprintf("unknown timezone %q", zoneStr))
	}

	entries, err := convert.Parse(src)
	if err != nil {
		return classifyParseErr(err)
	}
	groups := convert.Group(entries)

	if outDir == "" {
		outDir = convert.DefaultDir(src, suffix)
	}

	if err := convert.WriteDir(groups, outDir, convert.NewFormatter(zone)); err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"source":  src,
			"output":  outDir,
			"entries": len(entries),
			"files":   groups.Len(),
		})
	}

	_, _ = fmt.Fprintf(os.Stderr, "Converted %d entries into %d files -> %s\n",
		len(entries), groups.Len(), outDir)
	return nil
}

// classifyParseErr maps malformed-input failures to the bad-input exit code.
func classifyParseErr(err error) error {
	var orphan *convert.OrphanContinuationError
	var empty *convert.EmptyEntryError
	if errors.As(err, &orphan) || errors.As(err, &empty) {
		return cli.NewBadInputError(err.Error())
	}
	return err
}
