package storage

import (
	"context"

	"zeneasy/config"
	"zeneasy/internal/domain/service"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

// cloudinaryStorage implements service.ObjectStorage on Cloudinary.
type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage is the constructor for cloudinaryStorage.
func NewCloudinaryStorage(cfg *config.StorageConfig) (service.ObjectStorage, error) {
	cld, err := cloudinary.NewFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cloudinary client")
	}

	return &cloudinaryStorage{cld: cld}, nil
}

// Upload sends the object to Cloudinary and returns its secure URL.
func (s *cloudinaryStorage) Upload(ctx context.Context, object *service.UploadObject) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, object.Body, uploader.UploadParams{
		Folder: object.Folder,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload to cloudinary")
	}

	if resp.Error.Message != "" {
		return "", errors.Errorf("cloudinary rejected upload: %s", resp.Error.Message)
	}

	return resp.SecureURL, nil
}
