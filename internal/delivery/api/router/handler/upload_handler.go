package handler

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"zeneasy/internal/delivery/api/response"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts multipart uploads and returns their public URL.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// Upload stores the multipart "file" field in the optional "folder".
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	url, err := h.uploadUC.Upload(c.Request().Context(), &service.UploadObject{
		Body:        file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Folder:      c.FormValue("folder"),
		FileName:    filepath.Base(fileHeader.Filename),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "File uploaded")
}
