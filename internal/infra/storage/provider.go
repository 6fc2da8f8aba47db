package storage

import (
	"context"
	"log/slog"

	"zeneasy/config"
	"zeneasy/internal/domain/constants"
	"zeneasy/internal/domain/lifecycle"
	"zeneasy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies for the object storage
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage creates the object storage selected by storage.provider.
func NewObjectStorage(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}

	switch cfg.Provider {
	case constants.StorageProviderCloudinary:
		params.Logger.Info("Using Cloudinary object storage")

		return NewCloudinaryStorage(cfg)

	case constants.StorageProviderBlob, "":
		bucketURL := cfg.Blob.BucketURL
		if bucketURL == "" {
			bucketURL = "mem://"
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		bucket, err := OpenBucket(ctx, bucketURL)
		if err != nil {
			return nil, err
		}

		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return bucket.Close()
			},
		})

		params.Logger.Info("Using blob object storage", slog.String("bucketUrl", bucketURL))

		return NewBlobStorage(bucket, cfg.Blob.PublicBaseURL), nil

	default:
		return nil, errors.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
}
