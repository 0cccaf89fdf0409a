package cmd

import (
	"fmt"
	"os"

	"theme-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir holds the .env and optional config.yaml.
var configDir string

// RootCmd is the theme-sync entry point; subcommands do the work.
var RootCmd = &cobra.Command{
	Use:   "theme-sync",
	Short: "Theme Sync Service",
	Long: `Theme Sync keeps PLM styles and colorways consistent with their themes.
It resolves theme attributes from IDM, writes them onto colorways and
reconciles style status and theme assignment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory holding .env and config.yaml")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}
	reportFailure(err)
	os.Exit(1)
}

// reportFailure logs err on a console logger; the debug level selects ISO8601 timestamps.
func reportFailure(err error) {
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer func() { _ = l.Sync() }()
	l.Error("command failed", zap.Error(err))
}
