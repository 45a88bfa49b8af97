package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/michal-klimek/azure-log-converter/internal/cli"
	"github.com/michal-klimek/azure-log-converter/internal/config"
)

var version = "dev"

// cfg holds persistent defaults; loaded once in execute.
var cfg *config.Config

func main() {
	if err := execute(); err != nil {
		cli.FormatError(os.Stderr, err, false)
		os.Exit(cli.ExitCode(err))
	}
}

func execute() error {
	cfg = config.Load()

	root := &cobra.Command{
		Use:     "azlogconvert",
		Short:   "Convert Azure App Service log exports into readable per-tag files",
		Version: version,
	}
	root.AddCommand(newConvertCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newDownloadCmd())
	return root.Execute()
}
