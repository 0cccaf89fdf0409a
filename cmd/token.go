package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCmd groups credential diagnostics.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Inspect the ION API credential",
}

var tokenInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Acquire a credential and print its state",
	RunE: func(cmd *cobra.Command, args []string) error {
		comps, err := loadComponents()
		if err != nil {
			return err
		}
		defer comps.logger.Sync()

		if _, err := comps.tokens.Credential(context.Background()); err != nil {
			return fmt.Errorf("failed to acquire credential: %w", err)
		}
		return printJSON(comps.tokens.Info())
	},
}

var tokenRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Acquire a credential and revoke it, checking both provider endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		comps, err := loadComponents()
		if err != nil {
			return err
		}
		defer comps.logger.Sync()

		ctx := context.Background()
		if _, err := comps.tokens.Credential(ctx); err != nil {
			return fmt.Errorf("failed to acquire credential: %w", err)
		}
		if err := comps.tokens.Revoke(ctx); err != nil {
			return err
		}
		comps.logger.Info("Credential revoked", zap.Bool("has_token", comps.tokens.Info().HasToken))
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenInfoCmd)
	tokenCmd.AddCommand(tokenRevokeCmd)
	RootCmd.AddCommand(tokenCmd)
}
