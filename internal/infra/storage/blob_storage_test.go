package storage

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestUploadReturnsPublicURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket, "https://media.example.nz/", slog.Default())

	url, err := store.Upload(context.Background(), "cover/abc.jpg", "image/jpeg", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.nz/cover/abc.jpg", url)

	data, err := bucket.ReadAll(context.Background(), "cover/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	attrs, err := bucket.Attributes(context.Background(), "cover/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

func TestDeleteRemovesObject(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket, "https://media.example.nz", slog.Default())

	_, err := store.Upload(context.Background(), "gallery_0/abc.jpg", "image/jpeg", []byte("payload"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "gallery_0/abc.jpg"))

	exists, err := bucket.Exists(context.Background(), "gallery_0/abc.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteMissingObjectIsNotAnError(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket, "https://media.example.nz", slog.Default())

	assert.NoError(t, store.Delete(context.Background(), "never/uploaded.jpg"))
}
