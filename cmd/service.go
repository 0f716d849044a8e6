package cmd

import (
	"context"
	"fmt"

	"orth-check/core/config"
	"orth-check/core/database"
	"orth-check/core/storage"
	"orth-check/feature/orthology"

	"go.uber.org/zap"
)

// newService wires the orthology service from configuration. Storage and the
// history database are optional: failures are logged and the service runs without them.
func newService(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*orthology.Service, *orthology.Metrics, error) {
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	history := orthology.NewHistory(nil)
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Run history disabled: database connection failed", zap.Error(err))
		} else {
			history = orthology.NewHistory(db)
			if err := history.Migrate(ctx); err != nil {
				logg.Warn("Run history disabled: migration failed", zap.Error(err))
				history = orthology.NewHistory(nil)
			} else {
				logg.Info("Connected to history database", zap.String("database", cfg.Database.Name))
			}
		}
	}

	metrics := orthology.NewMetrics()
	svc := orthology.NewService(store, cfg.Storage.Bucket, cfg.Orthology, logg, history, metrics)
	return svc, metrics, nil
}
