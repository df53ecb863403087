package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/clnass/creator-service/internal/config"
	"github.com/clnass/creator-service/internal/types/media"
)

var (
	ErrUnsupportedType = errors.New("content type is not allowed")
	ErrFileTooLarge    = errors.New("file exceeds the maximum size")
	ErrEmptyFile       = errors.New("file is empty")
	ErrForeignURL      = errors.New("url does not belong to this bucket")
)

// objectStore is the subset of *minio.Client the service uses.
type objectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// Observer receives timing for every storage call.
type Observer interface {
	RecordUpload(d time.Duration, size int64, err error)
	RecordDelete(d time.Duration, err error)
}

type Service struct {
	client     objectStore
	bucketName string
	baseURL    string
	config     *config.Media
	observer   Observer
}

// NewService creates a new media service instance
func NewService(ctx context.Context, cfg *config.Config, observer Observer) (*Service, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKeyID, cfg.MinIO.SecretAccessKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	if err := ensureBucket(ctx, client, cfg.MinIO.BucketName); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return newService(client, cfg, observer), nil
}

type nopObserver struct{}

func (nopObserver) RecordUpload(time.Duration, int64, error) {}
func (nopObserver) RecordDelete(time.Duration, error)        {}

func newService(client objectStore, cfg *config.Config, observer Observer) *Service {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Service{
		client:     client,
		bucketName: cfg.MinIO.BucketName,
		baseURL:    publicBaseURL(cfg.MinIO),
		config:     &cfg.Media,
		observer:   observer,
	}
}

// publicBaseURL falls back to path-style addressing on the MinIO endpoint
// when no public base is configured.
func publicBaseURL(m config.MinIO) string {
	if m.PublicBaseURL != "" {
		return strings.TrimSuffix(m.PublicBaseURL, "/")
	}
	scheme := "http"
	if m.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, m.Endpoint, m.BucketName)
}

// ensureBucket creates the bucket if it doesn't exist
func ensureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// ValidateContentType checks if the content type is allowed
func (s *Service) ValidateContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	for _, allowed := range s.config.AllowedMimeTypes {
		if mediaType == allowed {
			return true
		}
	}
	return false
}

// Check rejects files that must not reach the bucket.
func (s *Service) Check(f media.File) error {
	if f.Size() == 0 {
		return fmt.Errorf("%s: %w", f.Name, ErrEmptyFile)
	}
	if !s.ValidateContentType(f.ContentType) {
		return fmt.Errorf("%s (%s): %w", f.Name, f.ContentType, ErrUnsupportedType)
	}
	if s.config.MaxFileSize > 0 && f.Size() > s.config.MaxFileSize {
		return fmt.Errorf("%s: %w", f.Name, ErrFileTooLarge)
	}
	return nil
}

// GenerateObjectKey creates a unique object key for the file
func (s *Service) GenerateObjectKey(f media.File) string {
	ext := strings.ToLower(path.Ext(f.Name))
	if ext == "" {
		mediaType, _, _ := mime.ParseMediaType(f.ContentType)
		switch mediaType {
		case "image/jpeg":
			ext = ".jpg"
		case "image/png":
			ext = ".png"
		case "image/gif":
			ext = ".gif"
		case "video/mp4":
			ext = ".mp4"
		case "video/mpeg":
			ext = ".mpeg"
		default:
			if extensions, err := mime.ExtensionsByType(mediaType); err == nil && len(extensions) > 0 {
				ext = extensions[0]
			}
		}
	}
	return uuid.New().String() + ext
}

// GetMediaURL returns the public URL for accessing media
func (s *Service) GetMediaURL(objectKey string) string {
	return s.baseURL + "/" + objectKey
}

// ObjectKey reverses GetMediaURL.
func (s *Service) ObjectKey(url string) (string, error) {
	key, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || key == "" {
		return "", fmt.Errorf("%s: %w", url, ErrForeignURL)
	}
	return key, nil
}

// Upload stores f under a fresh key and returns its public URL.
func (s *Service) Upload(ctx context.Context, f media.File) (string, error) {
	key := s.GenerateObjectKey(f)
	start := time.Now()

	_, err := s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(f.Data), f.Size(), minio.PutObjectOptions{
		ContentType: f.ContentType,
	})
	s.observer.RecordUpload(time.Since(start), f.Size(), err)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", f.Name, err)
	}

	return s.GetMediaURL(key), nil
}

// Remove deletes the object behind a URL returned by Upload.
func (s *Service) Remove(ctx context.Context, url string) error {
	key, err := s.ObjectKey(url)
	if err != nil {
		return err
	}

	start := time.Now()
	err = s.client.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{})
	s.observer.RecordDelete(time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
