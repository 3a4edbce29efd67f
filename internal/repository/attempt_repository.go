//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"image_of_the_day/internal/model"
)

// AttemptRepository は推測履歴の永続化を扱います。履歴は追記専用です。
type AttemptRepository interface {
	Create(ctx context.Context, db *gorm.DB, attempt *model.Attempt) error
	FindBySession(ctx context.Context, db *gorm.DB, userID, sessionID, date string) ([]model.Attempt, error)
	FindByUserAndDate(ctx context.Context, db *gorm.DB, userID, date string) ([]model.Attempt, error)
	CountByUserAndDate(ctx context.Context, db *gorm.DB, userID, date string) (int64, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, db *gorm.DB, attempt *model.Attempt) error {
	if err := db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// FindBySession はセッション単位の履歴を古い順で返します。
// 作成時刻が同一の場合はIDで順序を安定させます。
func (r *gormAttemptRepository) FindBySession(ctx context.Context, db *gorm.DB, userID, sessionID, date string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := db.WithContext(ctx).
		Where("user_id = ? AND session_id = ? AND date = ?", userID, sessionID, date).
		Order("created_at asc, attempt_id asc").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find attempts by session: %w", err)
	}
	return attempts, nil
}

func (r *gormAttemptRepository) FindByUserAndDate(ctx context.Context, db *gorm.DB, userID, date string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at asc, attempt_id asc").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find attempts by user and date: %w", err)
	}
	return attempts, nil
}

func (r *gormAttemptRepository) CountByUserAndDate(ctx context.Context, db *gorm.DB, userID, date string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Attempt{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return count, nil
}
