package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const uploadPrefix = "uploads/"

// imageExtensions lists the accepted image types and the extension stored with each.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type uploadService struct {
	storage  service.FileStorage
	maxBytes int64
	now      func() time.Time
	logger   *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.FileStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService creates the image upload service.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	maxBytes := int64(5 << 20)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadBytes > 0 {
		maxBytes = params.Config.Storage.MaxUploadBytes
	}

	return &uploadService{
		storage:  params.Storage,
		maxBytes: maxBytes,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores an image under uploads/yyyy/mm/. The type is taken from the content itself so a
// renamed file cannot pass as an image.
func (srv *uploadService) Upload(ctx context.Context, input *usecase.UploadInput) (*usecase.UploadResult, error) {
	if input.Size > srv.maxBytes {
		return nil, errors.Wrapf(domainerrors.ErrUploadTooLarge, "%d bytes exceeds %d", input.Size, srv.maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(input.Body, srv.maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if int64(len(data)) > srv.maxBytes {
		return nil, errors.Wrapf(domainerrors.ErrUploadTooLarge, "more than %d bytes", srv.maxBytes)
	}
	if len(data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "file is empty")
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrUploadTypeNotAllowed, "detected %s, declared %s", contentType, input.ContentType)
	}

	key := uploadPrefix + srv.now().UTC().Format("2006/01/") + uuid.NewString() + ext
	if err := srv.storage.Put(ctx, key, contentType, bytes.NewReader(data)); err != nil {
		return nil, errors.Wrap(err, "failed to store upload")
	}

	srv.log(ctx).Info("File uploaded",
		slog.String("key", key),
		slog.String("filename", input.Filename),
		slog.Int("size", len(data)))

	return &usecase.UploadResult{Key: key, URL: srv.storage.PublicURL(key)}, nil
}

// Open returns a stored upload. Keys outside the upload prefix are reported as missing.
func (srv *uploadService) Open(ctx context.Context, key string) (*service.StoredObject, error) {
	key = strings.TrimPrefix(key, "/")
	if !strings.HasPrefix(key, uploadPrefix) || path.Clean(key) != key {
		return nil, errors.Wrap(domainerrors.ErrUploadNotFound, "invalid upload key")
	}

	obj, err := srv.storage.Get(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload")
	}

	return obj, nil
}
