package usecase

import (
	"context"

	"zeneasy/internal/domain/service"
)

// UploadUsecase stores a binary and returns its public URL.
type UploadUsecase interface {
	Upload(ctx context.Context, object *service.UploadObject) (string, error)
}
