package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clnass/creator-service/internal/config"
	"github.com/clnass/creator-service/internal/types/media"
)

type fakeStore struct {
	objects map[string][]byte
	types   map[string]string
	putErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeStore) PutObject(_ context.Context, _, key string, r io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[key] = data
	f.types[key] = opts.ContentType
	return minio.UploadInfo{Key: key, Size: int64(len(data))}, nil
}

func (f *fakeStore) RemoveObject(_ context.Context, _, key string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, key)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		MinIO: config.MinIO{
			Endpoint:      "localhost:9000",
			BucketName:    "clnass101",
			PublicBaseURL: "https://clnass101.s3.amazonaws.com/",
		},
		Media: config.Media{
			AllowedMimeTypes: []string{"image/png", "image/jpeg", "video/mp4"},
			MaxFileSize:      16,
		},
	}
}

func TestUpload_ReturnsPublicURL(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, testConfig(), nil)

	url, err := svc.Upload(context.Background(), media.File{Name: "cover.PNG", ContentType: "image/png", Data: []byte("image1")})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "https://clnass101.s3.amazonaws.com/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	key, err := svc.ObjectKey(url)
	require.NoError(t, err)
	assert.Equal(t, []byte("image1"), store.objects[key])
	assert.Equal(t, "image/png", store.types[key])
}

func TestUpload_PropagatesStoreError(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("boom")
	svc := newService(store, testConfig(), nil)

	_, err := svc.Upload(context.Background(), media.File{Name: "a.png", ContentType: "image/png", Data: []byte("x")})
	require.Error(t, err)
	assert.Empty(t, store.objects)
}

func TestRemove(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, testConfig(), nil)

	url, err := svc.Upload(context.Background(), media.File{Name: "v.mp4", ContentType: "video/mp4", Data: []byte("video")})
	require.NoError(t, err)
	require.Len(t, store.objects, 1)

	require.NoError(t, svc.Remove(context.Background(), url))
	assert.Empty(t, store.objects)

	err = svc.Remove(context.Background(), "https://elsewhere.example.com/key.png")
	assert.ErrorIs(t, err, ErrForeignURL)
}

func TestCheck(t *testing.T) {
	svc := newService(newFakeStore(), testConfig(), nil)

	tests := []struct {
		name string
		file media.File
		want error
	}{
		{"allowed", media.File{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte("abc")}, nil},
		{"with params", media.File{Name: "a.png", ContentType: "image/png; charset=binary", Data: []byte("abc")}, nil},
		{"empty", media.File{Name: "a.png", ContentType: "image/png"}, ErrEmptyFile},
		{"type", media.File{Name: "a.txt", ContentType: "text/plain", Data: []byte("abc")}, ErrUnsupportedType},
		{"size", media.File{Name: "a.png", ContentType: "image/png", Data: make([]byte, 17)}, ErrFileTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Check(tt.file)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerateObjectKey_FallsBackToContentType(t *testing.T) {
	svc := newService(newFakeStore(), testConfig(), nil)

	key := svc.GenerateObjectKey(media.File{Name: "blob", ContentType: "video/mp4"})
	assert.True(t, strings.HasSuffix(key, ".mp4"))
}

func TestPublicBaseURL_DefaultsToEndpoint(t *testing.T) {
	got := publicBaseURL(config.MinIO{Endpoint: "minio:9000", BucketName: "media", UseSSL: true})
	assert.Equal(t, "https://minio:9000/media", got)
}
