package storage

import (
	"context"
	"errors"
	"fmt"

	"Smart-Grocery-Agent/internal/utils"
)

var ErrNotExist = errors.New("document does not exist")

// Blob reads and writes whole documents addressed by key. Writes replace the
// previous document entirely.
type Blob interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// NewBlobFromConfig picks the backend named by STORAGE_DRIVER.
func NewBlobFromConfig(ctx context.Context) (Blob, error) {
	cfg := utils.AppConfig()

	switch cfg.StorageDriver {
	case "", "file":
		return NewFileBlob(cfg.DataDir), nil
	case "s3":
		return NewAwsS3(ctx, S3Config{
			Bucket:    cfg.AWSS3Bucket,
			Region:    cfg.AWSS3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER: %s", cfg.StorageDriver)
	}
}
