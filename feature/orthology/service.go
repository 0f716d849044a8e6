package orthology

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"orth-check/core/reconcile"
	"orth-check/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Run sources recorded in history and metrics.
const (
	SourceCLI  = "cli"
	SourceHTTP = "http"
)

// RunSummary is the outcome of reconciling an ordered sequence of files.
type RunSummary struct {
	ID        string                  `json:"run_id"`
	Source    string                  `json:"source"`
	StartedAt time.Time               `json:"started_at"`
	Reports   []*reconcile.FileReport `json:"reports"`
}

// NamedReader is an already opened mapping file.
type NamedReader struct {
	Name   string
	Reader io.Reader
}

// EmitFunc receives each file report as soon as it is computed.
// Returning an error aborts the run.
type EmitFunc func(report *reconcile.FileReport) error

// Service reconciles orthology mapping files.
type Service struct {
	opener  *Opener
	client  storage.Client
	bucket  string
	cfg     Config
	logger  *zap.Logger
	history *History
	metrics *Metrics
}

// NewService creates a new orthology service.
// client, history and metrics may be nil.
func NewService(client storage.Client, bucket string, cfg Config, logger *zap.Logger, history *History, metrics *Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		opener:  NewOpener(client),
		client:  client,
		bucket:  bucket,
		cfg:     cfg,
		logger:  logger,
		history: history,
		metrics: metrics,
	}
}

// History returns the run history of the service.
func (s *Service) History() *History {
	return s.history
}

// Run reconciles the files at paths in order. Each report is emitted before
// the next file is opened, so reports of earlier files survive a later failure.
func (s *Service) Run(ctx context.Context, paths []string, emit EmitFunc) (*RunSummary, error) {
	summary := s.newSummary(SourceCLI)
	state := reconcile.NewState(s.logger)

	for _, p := range paths {
		rc, err := s.opener.Open(ctx, p)
		if err != nil {
			return nil, s.fail(summary, err)
		}
		err = s.process(ctx, state, summary, p, rc, emit)
		if cerr := rc.Close(); cerr != nil {
			s.logger.Warn("Failed to close mapping file", zap.String("file", p), zap.Error(cerr))
		}
		if err != nil {
			return nil, s.fail(summary, err)
		}
	}

	s.finish(ctx, summary)
	return summary, nil
}

// RunReaders reconciles already opened files in order.
func (s *Service) RunReaders(ctx context.Context, source string, files []NamedReader, emit EmitFunc) (*RunSummary, error) {
	summary := s.newSummary(source)
	state := reconcile.NewState(s.logger)

	for _, f := range files {
		if err := s.process(ctx, state, summary, f.Name, f.Reader, emit); err != nil {
			return nil, s.fail(summary, err)
		}
	}

	s.finish(ctx, summary)
	return summary, nil
}

// PublishReport uploads the text report of a run to object storage and
// returns the object name.
func (s *Service) PublishReport(ctx context.Context, summary *RunSummary) (string, error) {
	if s.client == nil {
		return "", ErrStorageNotConfigured
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	body := RenderReports(summary.Reports)
	object := path.Join(s.cfg.ReportPrefix, summary.ID+".txt")
	_, err = s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", object, err)
	}

	s.logger.Info("Report published", zap.String("run_id", summary.ID), zap.String("object", object))
	return object, nil
}

func (s *Service) newSummary(source string) *RunSummary {
	return &RunSummary{
		ID:        uuid.NewString(),
		Source:    source,
		StartedAt: time.Now().UTC(),
	}
}

func (s *Service) process(ctx context.Context, state *reconcile.State, summary *RunSummary, name string, r io.Reader, emit EmitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	grouping, err := ReadGrouping(r)
	if err != nil {
		return fmt.Errorf("failed to read mapping file %s: %w", name, err)
	}

	report := state.Reconcile(name, grouping)
	summary.Reports = append(summary.Reports, report)
	s.metrics.ObserveFile(report)

	s.logger.Debug("Mapping file reconciled",
		zap.String("run_id", summary.ID),
		zap.String("file", name),
		zap.Int("families", report.TotalFamilies),
		zap.Int("inconsistent", report.InconsistentFamilies),
	)

	if emit != nil {
		if err := emit(report); err != nil {
			return fmt.Errorf("failed to emit report for %s: %w", name, err)
		}
	}
	return nil
}

func (s *Service) fail(summary *RunSummary, err error) error {
	s.metrics.ObserveRun(summary.Source, err)
	s.logger.Error("Reconciliation run failed",
		zap.String("run_id", summary.ID),
		zap.Int("files_done", len(summary.Reports)),
		zap.Error(err),
	)
	return err
}

func (s *Service) finish(ctx context.Context, summary *RunSummary) {
	s.metrics.ObserveRun(summary.Source, nil)

	inconsistent := 0
	for _, r := range summary.Reports {
		inconsistent += r.InconsistentFamilies
	}
	s.logger.Info("Reconciliation run completed",
		zap.String("run_id", summary.ID),
		zap.String("source", summary.Source),
		zap.Int("files", len(summary.Reports)),
		zap.Int("inconsistent_families", inconsistent),
		zap.Duration("duration", time.Since(summary.StartedAt)),
	)

	if !s.history.Enabled() {
		return
	}
	if err := s.history.Save(ctx, summary); err != nil {
		s.logger.Warn("Failed to archive run", zap.String("run_id", summary.ID), zap.Error(err))
	}
}
