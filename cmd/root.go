package cmd

import (
	"fmt"
	"os"

	"console-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "console-server",
	Short: "Gateway Console Server",
	Long: `Console Server hosts the pre-built gateway web console locally and
injects the gateway endpoint and auth token into the page at serve time,
so the console connects without a rebuild.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the application logger so CLI errors look the
		// same as runtime errors. Console format for a CLI tool.
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
