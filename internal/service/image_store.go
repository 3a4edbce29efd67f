// internal/service/image_store.go
package service

import (
	"context"
	"log/slog"

	"image_of_the_day/internal/config"
	"image_of_the_day/internal/middleware"
)

//go:generate mockery --name ImageStore --output ./mocks --outpkg mocks --case=underscore

// ImageStore はヒント画像の保存先を抽象化します。
type ImageStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}

// --- LogStore ---
// ローカル開発用。実際には保存せず、ログに記録するだけです。
type LogStore struct{}

func (s *LogStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Storing image (LogStore) ---",
		"key", key,
		"bytes", len(data),
		"content_type", contentType,
	)
	return nil
}

func (s *LogStore) PublicURL(key string) string {
	return "log://" + key
}

// --- NewImageStore ファクトリ関数 ---
func NewImageStore(cfg *config.Config) ImageStore {
	logger := slog.Default()
	switch cfg.Storage.Type {
	case "s3":
		logger.Info("Initializing S3 image store...")
		return NewS3Store(cfg)
	case "log":
		logger.Info("Initializing Log image store...")
		return &LogStore{}
	default:
		logger.Warn("Unknown storage type, defaulting to LogStore", "type", cfg.Storage.Type)
		return &LogStore{}
	}
}
