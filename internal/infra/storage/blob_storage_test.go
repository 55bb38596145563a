package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "https://img.example.org/")

	url, err := store.Upload(ctx, "cats/abc.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.org/cats/abc.jpg", url)

	attrs, err := bucket.Attributes(ctx, "cats/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, "cats/abc.jpg"))
	exists, err := bucket.Exists(ctx, "cats/abc.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingIsNoop(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "")

	assert.NoError(t, store.Delete(context.Background(), "cats/missing.png"))
}

func TestBlobStorage_RelativeURLWithoutBase(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "")

	url, err := store.Upload(context.Background(), "cats/x.png", "image/png", []byte{1})
	require.NoError(t, err)
	assert.Equal(t, "/cats/x.png", url)
}

func TestWithCreateDir(t *testing.T) {
	assert.Equal(t, "file:///tmp/images?create_dir=true", withCreateDir("file:///tmp/images"))
	assert.Equal(t, "file:///tmp/images?create_dir=false", withCreateDir("file:///tmp/images?create_dir=false"))
}
