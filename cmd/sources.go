package cmd

import (
	"context"
	"fmt"

	"asset-loader/core/config"
	"asset-loader/core/database"
	"asset-loader/core/loader"
	"asset-loader/core/pool"
	"asset-loader/core/source"
	"asset-loader/core/storage"

	"go.uber.org/zap"
)

// newLoader builds a loader with the directory source as default and every
// enabled remote source registered under its configured id.
func newLoader(ctx context.Context, cfg *config.Config, spawner pool.Spawner, logg *zap.Logger) (*loader.Loader, error) {
	l := loader.NewFromDirectory(cfg.Loader.Directory, spawner,
		loader.WithLogger(logg),
		loader.WithHotReload(cfg.Loader.HotReload),
	)

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Storage.Bucket, err)
		}
		if !exists {
			return nil, fmt.Errorf("bucket %q does not exist", cfg.Storage.Bucket)
		}
		l.AddSource(cfg.Storage.SourceID, source.NewObjectStore(client, cfg.Storage.Bucket, cfg.Storage.Prefix))
		logg.Info("Registered object storage source",
			zap.String("source", cfg.Storage.SourceID),
			zap.String("bucket", cfg.Storage.Bucket),
		)
	}

	if cfg.Database.Enabled {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		l.AddSource(cfg.Database.SourceID, source.NewDatabase(db))
		logg.Info("Registered database source",
			zap.String("source", cfg.Database.SourceID),
			zap.String("driver", cfg.Database.Driver),
		)
	}

	return l, nil
}
