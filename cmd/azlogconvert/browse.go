package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/michal-klimek/azure-log-converter/internal/cli"
	"github.com/michal-klimek/azure-log-converter/internal/config"
	"github.com/michal-klimek/azure-log-converter/internal/convert"
)

func newBrowseCmd() *cobra.Command {
	var zoneStr string

	cmd := &cobra.Command{
		Use:   "browse <source-file>",
		Short: "Browse a log export interactively",
		Long:  "Browse parses a log export and opens a TUI with the tag list and per-tag entries, with scrolling and regex search.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd)
			return runBrowse(args[0], zoneStr)
		},
	}

	cmd.Flags().StringVar(&zoneStr, "zone", config.DefaultZone, "display timezone for formatted timestamps")

	return cmd
}

func runBrowse(src, zoneStr string) error {
	zone, err := time.LoadLocation(zoneStr)
	if err != nil {
		return cli.NewUsageError(fmt.Sprintf("unknown timezone %q", zoneStr))
	}

	entries, err := convert.Parse(src)
	if err != nil {
		return classifyParseErr(err)
	}
	groups := convert.Group(entries)

	model := convert.NewBrowseModel(groups, convert.NewFormatter(zone), src)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
