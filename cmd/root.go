package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"orth-check/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "orth-check",
	Short: "Orthology mapping consistency checker",
	Long: `orth-check reconciles a sequence of orthology mapping files, each grouping genes
into families for a different phylogenetic split, and reports the gene families whose
genes were mapped differently by earlier files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// Console format at debug level gives readable ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
