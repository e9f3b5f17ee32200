package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leon37/NetoLedger/internal/app"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "classify <description>",
		Short: "Classify one transaction description",
		Example: `  netoctl classify "Repsol 40L gasolina"
  netoctl classify --locale en "Netflix monthly"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.TrimSpace(strings.Join(args, " "))
			if description == "" {
				return fmt.Errorf("description must not be empty")
			}

			conf, err := loadConfig()
			if err != nil {
				return err
			}
			deps, err := app.New(cmd.Context(), conf)
			if err != nil {
				return err
			}
			defer closeApp(deps)

			start := time.Now()
			result, outcome := deps.Classify.Classify(cmd.Context(), description, locale)
			if outcome.Failed() {
				fmt.Fprintf(cmd.ErrOrStderr(), "classification failed (%s): %v\n", outcome.Kind, outcome.Err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "done in %v\n", time.Since(start).Round(time.Millisecond))
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "answer locale (default es)")
	return cmd
}

func closeApp(deps *app.App) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = deps.Close(ctx)
}
