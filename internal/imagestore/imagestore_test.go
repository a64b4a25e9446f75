package imagestore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
)

// fakeObjectAPI records calls and can simulate failures.
type fakeObjectAPI struct {
	putCalls    []string
	removeCalls []string
	putErr      error
	removeErr   error
}

func (f *fakeObjectAPI) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.putCalls = append(f.putCalls, object)
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	return minio.UploadInfo{Bucket: bucket, Key: object}, nil
}

func (f *fakeObjectAPI) RemoveObject(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error {
	f.removeCalls = append(f.removeCalls, object)
	return f.removeErr
}

func testStore(fake *fakeObjectAPI) *MinioStore {
	return &MinioStore{
		client:   fake,
		endpoint: "localhost:9000",
		bucket:   "campshare",
		now:      func() time.Time { return time.UnixMilli(1700000000000) },
	}
}

func TestAllowedImageFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"tent.jpg", true},
		{"tent.JPG", true},
		{"tent.jpeg", true},
		{"tent.png", true},
		{"tent.GIF", true},
		{"tent.pdf", false},
		{"tent.jpg.exe", false},
		{"tent", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := AllowedImageFile(tt.filename); got != tt.want {
			t.Errorf("AllowedImageFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestUpload(t *testing.T) {
	fake := &fakeObjectAPI{}
	store := testStore(fake)

	img, err := store.Upload("tent.jpg", strings.NewReader("data"), 4)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if img.Key != "1700000000000-tent.jpg" {
		t.Errorf("key = %q", img.Key)
	}
	if img.URL != "http://localhost:9000/campshare/1700000000000-tent.jpg" {
		t.Errorf("url = %q", img.URL)
	}
	if len(fake.putCalls) != 1 {
		t.Errorf("got %d put calls, want 1", len(fake.putCalls))
	}
}

func TestUploadRejectsNonImageBeforeNetwork(t *testing.T) {
	fake := &fakeObjectAPI{}
	store := testStore(fake)

	_, err := store.Upload("malware.exe", strings.NewReader("data"), 4)
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("err = %v, want ErrNotImage", err)
	}
	if len(fake.putCalls) != 0 {
		t.Errorf("got %d put calls, want 0", len(fake.putCalls))
	}
}

func TestUploadFailure(t *testing.T) {
	fake := &fakeObjectAPI{putErr: errors.New("bucket gone")}
	store := testStore(fake)

	if _, err := store.Upload("tent.png", strings.NewReader("data"), 4); err == nil {
		t.Error("expected upload error")
	}
}

func TestRemove(t *testing.T) {
	fake := &fakeObjectAPI{}
	store := testStore(fake)

	if err := store.Remove("1700000000000-tent.jpg"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(fake.removeCalls) != 1 {
		t.Errorf("got %d remove calls, want 1", len(fake.removeCalls))
	}
}

func TestRemoveEmptyKey(t *testing.T) {
	store := testStore(&fakeObjectAPI{})

	if err := store.Remove(""); err == nil {
		t.Error("expected error for empty key")
	}
}
