package storage

import (
	"context"
	"fmt"
	"strings"

	"echoforge/internal/config"
)

const (
	// TypeLocal stores files on the local filesystem.
	TypeLocal = "local"
	// TypeS3 targets Amazon S3 or a compatible backend.
	TypeS3 = "s3"
	// TypeOSS targets Aliyun OSS.
	TypeOSS = "oss"
	// TypeCOS targets Tencent COS.
	TypeCOS = "cos"
	// TypeR2 targets Cloudflare R2.
	TypeR2 = "r2"
)

// SaveOptions controls how a backend persists a file.
//
// Category groups files on disk (e.g. "sources"), Extension hints the
// preferred file extension without the leading dot, and BaseName
// overrides the generated file name when set.
type SaveOptions struct {
	Category     string
	Extension    string
	BaseName     string
	SkipIfExists bool
}

// Storage persists binary payloads and returns a backend-specific key
// (a relative path for local storage, an object key for remotes).
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
	Delete(ctx context.Context, key string) error
}

// LocalBaseDirProvider is implemented by backends whose files can be
// served directly over HTTP from a local directory.
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage instantiates the storage backend for the configuration.
func NewStorage(cfg config.Config) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeOSS:
		return NewOSSStorage(cfg)
	case TypeCOS:
		return NewCOSStorage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
