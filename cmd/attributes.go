package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var rawAttributes bool

// attributesCmd prints the attributes behind an IDM PID.
var attributesCmd = &cobra.Command{
	Use:   "attributes <pid>",
	Short: "Resolve an IDM PID and print its formatted attributes",
	Example: `  attributes Theme_Attributes-115-0-LATEST
  attributes Theme_Attributes-115-0-LATEST --raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comps, err := loadComponents()
		if err != nil {
			return err
		}
		defer comps.logger.Sync()

		ctx := context.Background()
		if rawAttributes {
			mapping, err := comps.mapper.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(mapping)
		}

		formatted, err := comps.mapper.Format(ctx, args[0], time.Now())
		if err != nil {
			return err
		}
		return printJSON(formatted)
	},
}

func init() {
	attributesCmd.Flags().BoolVar(&rawAttributes, "raw", false, "Print the joined attributes instead of the flat export")
	RootCmd.AddCommand(attributesCmd)
}
