package service

import "context"

// MediaStorage stores uploaded media objects.
type MediaStorage interface {
	// Put writes data at key, replacing any existing object.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// PublicURL returns the retrievable URL for key.
	PublicURL(key string) string
}
