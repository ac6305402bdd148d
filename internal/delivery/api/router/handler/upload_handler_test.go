package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cakes/internal/delivery/api/validator"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/service"
	mockUsecase "cakes/internal/mocks/usecase"
	"cakes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUploadHandler(t *testing.T) (*UploadHandler, *mockUsecase.MockUploadUsecase) {
	uploadUC := mockUsecase.NewMockUploadUsecase(t)

	return NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: slog.Default()}), uploadUC
}

func newMultipartContext(t *testing.T, field, filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUploadHandler_Upload(t *testing.T) {
	h, uploadUC := newUploadHandler(t)
	content := []byte("\x89PNG\r\n\x1a\nimage-bytes")

	uploadUC.EXPECT().Upload(mock.Anything, mock.MatchedBy(func(input *usecase.UploadInput) bool {
		data, err := io.ReadAll(input.Body)

		return err == nil && input.Filename == "truffle.png" &&
			input.Size == int64(len(content)) && bytes.Equal(data, content)
	})).Return(&usecase.UploadResult{
		Key: "uploads/2026/10/truffle.png",
		URL: "http://localhost:8080/uploads/2026/10/truffle.png",
	}, nil)

	c, rec := newMultipartContext(t, uploadFormField, "truffle.png", content)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp UploadResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, "uploads/2026/10/truffle.png", resp.Key)
}

func TestUploadHandler_Upload_MissingField(t *testing.T) {
	h, _ := newUploadHandler(t)
	c, _ := newMultipartContext(t, "image", "truffle.png", []byte("data"))

	err := h.Upload(c)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUploadHandler_Serve(t *testing.T) {
	h, uploadUC := newUploadHandler(t)

	uploadUC.EXPECT().Open(mock.Anything, "/uploads/2026/10/truffle.png").Return(&service.StoredObject{
		ReadCloser:  io.NopCloser(strings.NewReader("image-bytes")),
		ContentType: "image/png",
		Size:        11,
	}, nil)

	c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/uploads/2026/10/truffle.png"})

	require.NoError(t, h.Serve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "11", rec.Header().Get(echo.HeaderContentLength))
	assert.Equal(t, "image-bytes", rec.Body.String())
}

func TestUploadHandler_Serve_NotFound(t *testing.T) {
	h, uploadUC := newUploadHandler(t)

	uploadUC.EXPECT().Open(mock.Anything, "/uploads/missing.png").Return(nil, domainerrors.ErrUploadNotFound)

	c, _ := newTestContext(t, testRequest{method: http.MethodGet, target: "/uploads/missing.png"})

	err := h.Serve(c)

	assert.True(t, errors.Is(err, domainerrors.ErrUploadNotFound))
}
