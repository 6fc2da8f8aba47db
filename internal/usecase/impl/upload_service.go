package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"zeneasy/config"
	deliverycontext "zeneasy/internal/delivery/context"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultUploadFolder = "uploads"

var folderPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"application/pdf": true,
}

type uploadService struct {
	storage service.ObjectStorage
	maxSize int64
	logger  *slog.Logger
}

// UploadServiceParams holds dependencies for the upload service, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.ObjectStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	srv := &uploadService{
		storage: params.Storage,
		logger:  params.Logger,
	}

	if params.Config.Storage != nil {
		srv.maxSize = params.Config.Storage.MaxUploadSize
	}

	return srv
}

// Upload checks type, size and folder, then hands the object to storage.
func (srv *uploadService) Upload(ctx context.Context, object *service.UploadObject) (string, error) {
	contentType := strings.ToLower(strings.TrimSpace(strings.SplitN(object.ContentType, ";", 2)[0]))
	if !allowedUploadTypes[contentType] {
		return "", domainerrors.ErrValidationFailed.WrapMessage("unsupported file type " + contentType)
	}
	object.ContentType = contentType

	if object.Size <= 0 {
		return "", domainerrors.ErrValidationFailed.WrapMessage("file is empty")
	}
	if srv.maxSize > 0 && object.Size > srv.maxSize {
		return "", domainerrors.ErrValidationFailed.WrapMessage("file exceeds the upload size limit")
	}

	if object.Folder == "" {
		object.Folder = defaultUploadFolder
	}
	if !folderPattern.MatchString(object.Folder) {
		return "", domainerrors.ErrValidationFailed.WrapMessage("folder may only contain letters, digits, '-' and '_'")
	}

	url, err := srv.storage.Upload(ctx, object)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Upload failed",
			slog.String("folder", object.Folder),
			slog.Any("error", err),
		)

		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return url, nil
}
