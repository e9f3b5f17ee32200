package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/leon37/NetoLedger/internal/config"
	"github.com/leon37/NetoLedger/internal/logger"
	"github.com/spf13/cobra"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "netoctl",
		Short:         "Run NetoLedger workflows from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")

	root.AddCommand(classifyCmd())
	root.AddCommand(resumeCmd())
	root.AddCommand(callCmd())
	return root
}

// loadConfig reads the config and installs the logger. CLI logs go to stderr
// as text so stdout stays clean JSON.
func loadConfig() (*config.Config, error) {
	conf, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	lvl, err := logger.ParseLevel(conf.Log.Level)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger.New(os.Stderr, lvl, "text"))
	return conf, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
