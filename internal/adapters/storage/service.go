// Package storage provides a domain-agnostic interface for S3-compatible
// object storage. Scan processing reads uploaded images through it and
// purges them after processing.
package storage

import (
	"context"
)

// Object is a downloaded storage object held in memory. Scan images are
// size-capped well below anything that would make buffering a problem.
type Object struct {
	Data        []byte
	ContentType string
	Size        int64
}

// Service defines the object storage operations the application uses.
type Service interface {
	// FetchObject downloads an object fully into memory after validating
	// its content type and size.
	FetchObject(ctx context.Context, bucket, fileKey string) (*Object, error)

	// DeleteObject removes an object from storage.
	DeleteObject(ctx context.Context, bucket, fileKey string) error

	// EnsureBucketExists creates the bucket if it doesn't exist.
	EnsureBucketExists(ctx context.Context, bucket string) error
}

// Config defines the configuration interface for storage.
type Config interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	IsMinIOEnabled() bool
}
