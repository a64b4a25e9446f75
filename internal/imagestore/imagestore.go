// Package imagestore stores uploaded campground images in an
// S3-compatible object store.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrNotImage is returned when an uploaded filename is not an
// accepted image type.
var ErrNotImage = errors.New("only image files (jpg, jpeg, png, gif) are allowed")

// StoredImage is the durable result of an upload.
type StoredImage struct {
	URL string // public URL of the stored object
	Key string // opaque handle needed to remove it later
}

// Store uploads and removes campground images.
type Store interface {
	Upload(filename string, r io.Reader, size int64) (*StoredImage, error)
	Remove(key string) error
}

// objectAPI is the subset of the minio client the store uses.
type objectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// MinioStore is a Store backed by a MinIO/S3 bucket.
type MinioStore struct {
	client   objectAPI
	endpoint string
	bucket   string
	useSSL   bool

	// Overridable clock for stable object keys in tests.
	now func() time.Time
}

// NewMinioStore creates a MinIO-backed image store.
func NewMinioStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating object store client: %w", err)
	}

	return &MinioStore{
		client:   client,
		endpoint: endpoint,
		bucket:   bucket,
		useSSL:   useSSL,
		now:      time.Now,
	}, nil
}

// AllowedImageFile reports whether filename has an accepted image
// extension (jpg, jpeg, png, gif — case-insensitive).
func AllowedImageFile(filename string) bool {
	switch strings.ToLower(path.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

// Upload stores the file and returns its URL and deletion key.
// The filename filter runs before any network call.
func (s *MinioStore) Upload(filename string, r io.Reader, size int64) (*StoredImage, error) {
	if !AllowedImageFile(filename) {
		return nil, ErrNotImage
	}

	key := fmt.Sprintf("%d-%s", s.now().UnixMilli(), path.Base(filename))

	_, err := s.client.PutObject(context.Background(), s.bucket, key, r, size,
		minio.PutObjectOptions{ContentType: contentTypeFor(filename)})
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", key, err)
	}

	return &StoredImage{URL: s.objectURL(key), Key: key}, nil
}

// Remove deletes a stored object by its key.
func (s *MinioStore) Remove(key string) error {
	if key == "" {
		return fmt.Errorf("object key is required")
	}

	if err := s.client.RemoveObject(context.Background(), s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing %s: %w", key, err)
	}

	return nil
}

// objectURL builds the public URL for a stored object.
func (s *MinioStore) objectURL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	}
	return "application/octet-stream"
}
