package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"gemtrade/config"
	"gemtrade/logger"
)

// Minio stores objects in one bucket of an S3 compatible server.
type Minio struct {
	mc     *minio.Client
	bucket string
}

// NewMinio returns nil, nil when no endpoint is configured.
func NewMinio(cfg config.StorageConfig) (*Minio, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &Minio{mc: mc, bucket: cfg.Bucket}, nil
}

// Init creates the bucket if it does not exist.
func (m *Minio) Init(ctx context.Context) error {
	exists, err := m.mc.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", m.bucket, err)
	}
	if !exists {
		if err := m.mc.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", m.bucket, err)
		}
		logger.Info("bucket created", "bucket", m.bucket)
	}
	return nil
}

func (m *Minio) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := m.mc.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", m.bucket, key, err)
	}
	logger.Debug("object stored", "bucket", m.bucket, "key", key, "size", len(data))
	return nil
}

func (m *Minio) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.mc.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", m.bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("get %s/%s: %w", m.bucket, key, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s/%s: %w", m.bucket, key, err)
	}
	return data, nil
}
