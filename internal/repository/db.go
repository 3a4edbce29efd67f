// internal/repository/db.go
package repository

import (
	"log/slog"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"image_of_the_day/internal/model"
)

// NewDB はデータベース接続を初期化し、マイグレーションを実行します。
func NewDB(dsn string, logger *slog.Logger) (*gorm.DB, error) {
	gormLogger := slogGorm.New(
		slogGorm.WithHandler(logger.Handler()),
		slogGorm.WithTraceAll(), // 全てのSQLをログに出力
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true, // 一意制約違反を gorm.ErrDuplicatedKey に変換する
	})
	if err != nil {
		logger.Error("Failed to connect to database", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get underlying sql.DB", slog.Any("error", err))
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.DailyWord{},
		&model.Attempt{},
		&model.DailyOutcome{},
	); err != nil {
		logger.Error("Failed to migrate database", slog.Any("error", err))
		return nil, err
	}

	logger.Info("Database connection established")
	return db, nil
}
