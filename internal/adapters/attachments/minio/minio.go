package minio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"paste-upload/internal/config"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store is an attachment store backed by an S3-compatible bucket
type Store struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewStore connects to the object store and ensures the bucket exists
func NewStore(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Store{client: client, config: cfg, logger: logger}, nil
}

// Save writes data under a collision-free variation of desiredName and
// returns the object key actually used.
func (s *Store) Save(ctx context.Context, desiredName string, data []byte) (string, error) {
	name := path.Base(desiredName)
	if name == "." || name == "/" {
		name = "attachment"
	}

	stored := name
	for i := 1; ; i++ {
		_, err := s.client.StatObject(ctx, s.config.BucketName, stored, minio.StatObjectOptions{})
		if err != nil {
			if minio.ToErrorResponse(err).Code == "NoSuchKey" {
				break
			}
			return "", fmt.Errorf("failed to check object existence: %w", err)
		}
		ext := path.Ext(name)
		stored = fmt.Sprintf("%s %d%s", strings.TrimSuffix(name, ext), i, ext)
	}

	contentType := http.DetectContentType(data)
	_, err := s.client.PutObject(ctx, s.config.BucketName, stored, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store attachment: %w", err)
	}

	s.logger.Info("attachment stored", "bucket", s.config.BucketName, "key", stored, "size", len(data))
	return stored, nil
}
