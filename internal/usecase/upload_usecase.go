package usecase

import (
	"context"
	"io"

	"cakes/internal/domain/service"
)

// UploadInput is a file received from a multipart form.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResult locates a stored file.
type UploadResult struct {
	Key string
	URL string
}

// UploadUsecase stores back-office images and serves them back.
type UploadUsecase interface {
	Upload(ctx context.Context, input *UploadInput) (*UploadResult, error)
	Open(ctx context.Context, key string) (*service.StoredObject, error)
}
