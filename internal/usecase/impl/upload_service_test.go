package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/service"
	mockService "cakes/internal/mocks/service"
	"cakes/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func createTestUploadService(t *testing.T) (*uploadService, *mockService.MockFileStorage) {
	storage := mockService.NewMockFileStorage(t)
	svc := NewUploadService(UploadServiceParams{Storage: storage, Config: newTestConfig(5), Logger: newDiscardLogger()}).(*uploadService)
	svc.now = func() time.Time { return time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC) }

	return svc, storage
}

func TestUploadService_Upload(t *testing.T) {
	t.Run("stores a png under the month prefix", func(t *testing.T) {
		svc, storage := createTestUploadService(t)
		ctx := context.Background()

		storage.EXPECT().Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/2026/10/") && strings.HasSuffix(key, ".png")
		}), "image/png", mock.Anything).Return(nil)
		storage.EXPECT().PublicURL(mock.Anything).RunAndReturn(func(key string) string {
			return "https://cdn.example.com/" + key
		})

		result, err := svc.Upload(ctx, &usecase.UploadInput{
			Filename:    "cake.png",
			ContentType: "image/png",
			Size:        int64(len(pngHeader)),
			Body:        bytes.NewReader(pngHeader),
		})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/"+result.Key, result.URL)
	})

	t.Run("declared size over the limit", func(t *testing.T) {
		svc, _ := createTestUploadService(t)

		_, err := svc.Upload(context.Background(), &usecase.UploadInput{Size: 4096, Body: bytes.NewReader(pngHeader)})

		assert.True(t, errors.Is(err, domainerrors.ErrUploadTooLarge))
	})

	t.Run("body over the limit despite declared size", func(t *testing.T) {
		svc, _ := createTestUploadService(t)
		body := append(append([]byte{}, pngHeader...), make([]byte, 2048)...)

		_, err := svc.Upload(context.Background(), &usecase.UploadInput{Size: 10, Body: bytes.NewReader(body)})

		assert.True(t, errors.Is(err, domainerrors.ErrUploadTooLarge))
	})

	t.Run("renamed text file", func(t *testing.T) {
		svc, _ := createTestUploadService(t)

		_, err := svc.Upload(context.Background(), &usecase.UploadInput{
			Filename:    "cake.png",
			ContentType: "image/png",
			Body:        strings.NewReader("definitely not an image"),
		})

		assert.True(t, errors.Is(err, domainerrors.ErrUploadTypeNotAllowed))
	})

	t.Run("empty file", func(t *testing.T) {
		svc, _ := createTestUploadService(t)

		_, err := svc.Upload(context.Background(), &usecase.UploadInput{Body: strings.NewReader("")})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestUploadService_Open(t *testing.T) {
	svc, storage := createTestUploadService(t)
	ctx := context.Background()
	obj := &service.StoredObject{ReadCloser: io.NopCloser(bytes.NewReader(pngHeader)), ContentType: "image/png"}

	storage.EXPECT().Get(ctx, "uploads/2026/10/a.png").Return(obj, nil)

	got, err := svc.Open(ctx, "/uploads/2026/10/a.png")
	require.NoError(t, err)
	assert.Equal(t, obj, got)

	for _, key := range []string{"config/secrets.yaml", "uploads/../config.yaml", "uploads//a.png"} {
		_, err := svc.Open(ctx, key)
		assert.True(t, errors.Is(err, domainerrors.ErrUploadNotFound), key)
	}
}
