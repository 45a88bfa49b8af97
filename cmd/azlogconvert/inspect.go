package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/michal-klimek/azure-log-converter/internal/convert"
)

func newInspectCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <source-file>",
		Short: "Summarize a log export without writing output files",
		Long: "Inspect parses a log export and prints record/entry counts, per-tag and " +
			"per-level breakdowns, and a per-minute activity timeline.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output summary as JSON")

	return cmd
}

func runInspect(src string, jsonOutput bool) error {
	s, err := convert.Inspect(src)
	if err != nil {
		return classifyParseErr(err)
	}

	if jsonOutput {
		return s.WriteJSON(os.Stdout)
	}
	s.WriteText(os.Stdout)
	return nil
}
