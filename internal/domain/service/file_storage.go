package service

import (
	"context"
	"io"
)

// StoredObject is a readable object from storage. Callers must close it.
type StoredObject struct {
	io.ReadCloser
	ContentType string
	Size        int64
}

// FileStorage stores uploaded files.
type FileStorage interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) error
	Get(ctx context.Context, key string) (*StoredObject, error)
	PublicURL(key string) string
}
