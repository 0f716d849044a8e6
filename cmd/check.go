package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"orth-check/core/config"
	"orth-check/core/logger"
	"orth-check/core/reconcile"
	"orth-check/feature/orthology"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// checkOptions holds the flags of the check command.
type checkOptions struct {
	output  string
	format  string
	publish bool
}

var checkFlags checkOptions

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <mapping-file> <mapping-file>...",
	Short: "Check orthology mapping files for gene family consistency",
	Long: `Reconciles the given orthology mapping files in order and prints, for each file,
the gene families whose genes were mapped differently by earlier files.

Files are tab separated with a header line. Paths of the form s3://bucket/key are read
from the configured object storage.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.Context(), cmd.OutOrStdout(), args, checkFlags)
	},
}

func runCheck(ctx context.Context, stdout io.Writer, paths []string, opts checkOptions) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatText, formatJSON)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	svc, _, err := newService(ctx, cfg, logg)
	if err != nil {
		return err
	}

	out := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var emit orthology.EmitFunc
	if opts.format == formatText {
		emit = func(r *reconcile.FileReport) error {
			return orthology.WriteReport(out, r)
		}
	}

	summary, err := svc.Run(ctx, paths, emit)
	if err != nil {
		return err
	}

	if opts.format == formatJSON {
		if err := orthology.WriteJSON(out, summary); err != nil {
			return err
		}
	}

	if opts.publish {
		publishRun(ctx, svc, summary, logg)
	}

	return nil
}

// publishRun uploads the run's text report. Failures leave the written
// reports valid and are only logged.
func publishRun(ctx context.Context, svc *orthology.Service, summary *orthology.RunSummary, logg *zap.Logger) {
	object, err := svc.PublishReport(ctx, summary)
	if err != nil {
		logg.Warn("Report not published", zap.String("run_id", summary.ID), zap.Error(err))
		return
	}
	logg.Info("Report available in storage",
		zap.String("run_id", summary.ID),
		zap.String("object", object),
	)
}

func init() {
	checkCmd.Flags().StringVarP(&checkFlags.output, "output", "o", "", "Write the report to this file instead of stdout")
	checkCmd.Flags().StringVarP(&checkFlags.format, "format", "f", formatText, "Report format (text or json)")
	checkCmd.Flags().BoolVar(&checkFlags.publish, "publish", false, "Upload the text report to the configured storage bucket")
	RootCmd.AddCommand(checkCmd)
}
