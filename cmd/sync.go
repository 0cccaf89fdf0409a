package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"theme-sync/core/reconcile"
	"theme-sync/feature/style"
	"theme-sync/feature/theme"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for sync commands
	dryRunSync bool
	yesConfirm bool
)

// syncCmd is the parent command for write operations against PLM.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Write theme attributes onto colorways and reconcile styles",
	Long: `Sync writes IDM theme attributes onto PLM colorways, then reconciles the
status and theme of every affected style.

Examples:
  # Preview a theme update without writing
  sync theme 1174 --dry-run

  # Update a theme, auto-confirming the write
  sync theme 1174 --yes

  # Update a single style
  sync style 54321`,
}

var syncThemeCmd = &cobra.Command{
	Use:   "theme <themeId>",
	Short: "Update every colorway of a theme and reconcile its styles",
	Args:  cobra.ExactArgs(1),
	RunE:  runSyncTheme,
}

var syncStyleCmd = &cobra.Command{
	Use:   "style <styleId>",
	Short: "Update every colorway of a style and reconcile it",
	Args:  cobra.ExactArgs(1),
	RunE:  runSyncStyle,
}

func init() {
	syncCmd.PersistentFlags().BoolVar(&dryRunSync, "dry-run", false, "Compute patches and decisions without writing")
	syncCmd.PersistentFlags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm writes (non-interactive)")

	syncCmd.AddCommand(syncThemeCmd)
	syncCmd.AddCommand(syncStyleCmd)
	RootCmd.AddCommand(syncCmd)
}

func parseID(arg, name string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", name, arg)
	}
	return id, nil
}

func runSyncTheme(cmd *cobra.Command, args []string) error {
	themeID, err := parseID(args[0], "themeId")
	if err != nil {
		return err
	}
	if !dryRunSync && !confirmWrite() {
		fmt.Println("Operation cancelled. No changes were made.")
		return nil
	}

	comps, err := loadComponents()
	if err != nil {
		return err
	}
	l := comps.logger
	defer l.Sync()

	svc := theme.NewService(comps.plm, comps.mapper, comps.cfg.PLM.ThemeConcurrency, l.Named("theme"))
	report, err := svc.UpdateTheme(context.Background(), themeID, reconcile.Options{DryRun: dryRunSync})
	if err != nil {
		return fmt.Errorf("theme %d: %w", themeID, err)
	}

	s := report.UpdateSummary
	l.Info("Theme sync report",
		zap.Int("theme_id", themeID),
		zap.Bool("dry_run", report.DryRun),
		zap.Int("styles", s.TotalStyles),
		zap.Int("failed_styles", s.FailedStyles),
		zap.Int("colorways", s.TotalUpdatedStyleColorways),
		zap.Int("styles_updated", s.StyleUpdatedCount),
		zap.Int("styles_planned", report.StyleUpdateResults.Summary.Planned),
	)
	printReconcileSample(l, report.StyleUpdateResults)
	return printJSON(report)
}

func runSyncStyle(cmd *cobra.Command, args []string) error {
	styleID, err := parseID(args[0], "styleId")
	if err != nil {
		return err
	}
	if !dryRunSync && !confirmWrite() {
		fmt.Println("Operation cancelled. No changes were made.")
		return nil
	}

	comps, err := loadComponents()
	if err != nil {
		return err
	}
	l := comps.logger
	defer l.Sync()

	svc := style.NewService(comps.plm, comps.mapper, l.Named("style"))
	report, err := svc.UpdateStyle(context.Background(), styleID, reconcile.Options{DryRun: dryRunSync})
	if err != nil {
		return fmt.Errorf("style %d: %w", styleID, err)
	}

	l.Info("Style sync report",
		zap.Int("style_id", styleID),
		zap.Bool("dry_run", report.DryRun),
		zap.Int("patched_colorways", report.UpdateSummary.PatchedColorways),
		zap.Int("themes_skipped", report.UpdateSummary.ThemesSkipped),
		zap.String("outcome", string(report.StyleUpdate.Outcome)),
	)
	return printJSON(report)
}

// printReconcileSample logs the first changed styles of a run.
func printReconcileSample(l *zap.Logger, report reconcile.Report) {
	const maxShow = 5
	shown := 0
	for _, r := range report.Results {
		if r.Decision == nil || !r.Decision.Changed() {
			continue
		}
		if shown == maxShow {
			l.Info("Additional changes not shown", zap.Int("checked", report.Summary.Checked))
			return
		}
		l.Info("Style change",
			zap.Int("style_id", r.StyleID),
			zap.String("outcome", string(r.Outcome)),
			zap.Any("status", r.Decision.StatusUpdate),
			zap.Any("theme_id", r.Decision.ThemeIDUpdate),
		)
		shown++
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// confirmWrite prompts the user for confirmation or uses --yes flag.
func confirmWrite() bool {
	if yesConfirm {
		return true
	}

	fmt.Print("Type 'yes' to write to PLM: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
