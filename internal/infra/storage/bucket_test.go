package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStorage_PutOverwrites(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStorage(bucket, "https://cdn.example.com/media/")
	ctx := context.Background()
	key := "voice/user-1760000000123.m4a"

	require.NoError(t, store.Put(ctx, key, []byte("first"), "audio/m4a"))
	require.NoError(t, store.Put(ctx, key, []byte("second"), "audio/m4a"))

	data, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "audio/m4a", attrs.ContentType)
}

func TestBucketStorage_PublicURL(t *testing.T) {
	tests := []struct {
		base string
		key  string
		want string
	}{
		{"https://cdn.example.com/media/", "photos/a.jpg", "https://cdn.example.com/media/photos/a.jpg"},
		{"https://cdn.example.com/media", "/photos/a.jpg", "https://cdn.example.com/media/photos/a.jpg"},
		{"", "photos/a.jpg", "photos/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBucketStorage(nil, tt.base).PublicURL(tt.key))
		})
	}
}
