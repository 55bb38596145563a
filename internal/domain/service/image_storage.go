package service

import (
	"context"
)

// ImageStorage stores uploaded cat pictures and returns the URL clients load them from.
type ImageStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (url string, err error)
	Delete(ctx context.Context, key string) error
}
