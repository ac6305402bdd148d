package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cakes/internal/delivery/api/response"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const uploadFormField = "file"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts back-office images and serves stored files.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadResponse locates a stored file.
type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Upload stores the multipart file field.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("multipart field \"file\" is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	result, err := h.uploadUC.Upload(c.Request().Context(), &usecase.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, UploadResponse{Key: result.Key, URL: result.URL})
}

// Serve streams the stored file addressed by the request path.
func (h *UploadHandler) Serve(c echo.Context) error {
	object, err := h.uploadUC.Open(c.Request().Context(), c.Request().URL.Path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer object.Close()

	header := c.Response().Header()
	if object.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(object.Size, 10))
	}
	header.Set("Cache-Control", "public, max-age=86400")

	if err := c.Stream(http.StatusOK, object.ContentType, object); err != nil {
		h.logger.Warn("Failed to stream upload", slog.String("path", c.Request().URL.Path), slog.Any("error", err))
	}

	return nil
}
