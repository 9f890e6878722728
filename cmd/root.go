package cmd

import (
	"fmt"
	"os"

	"kitinventory/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "kitinventory",
	Short: "Construction kit inventory service",
	Long: `Kitinventory tracks a collector's construction-kit acquisitions.
It searches the remote part catalog, reconciles received part counts against
expected counts, and maintains a derived inventory summary from an append-only
acquisition event log.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level so CLI users get readable
		// ISO8601 timestamps instead of epoch values
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
