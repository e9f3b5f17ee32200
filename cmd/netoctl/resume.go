package main

import (
	"fmt"

	"github.com/leon37/NetoLedger/internal/app"
	"github.com/spf13/cobra"
)

func resumeCmd() *cobra.Command {
	var question, locale string

	cmd := &cobra.Command{
		Use:     "resume <uid>",
		Short:   "Summarize a user's net worth from the asset store",
		Example: `  netoctl resume u-123 --question "¿Cuánto tengo en fondos?"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			deps, err := app.New(cmd.Context(), conf)
			if err != nil {
				return err
			}
			defer closeApp(deps)

			result, outcome, err := deps.Networth.Summarize(cmd.Context(), args[0], question, locale)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if outcome.Failed() {
				return fmt.Errorf("summary failed (%s): %w", outcome.Kind, outcome.Err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&question, "question", "q", "", "question to answer about the assets")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "answer locale (default es)")
	return cmd
}
