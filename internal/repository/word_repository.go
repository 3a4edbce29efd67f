//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"image_of_the_day/internal/model"
)

// WordRepository は日次単語の永続化を扱います。
type WordRepository interface {
	Create(ctx context.Context, db *gorm.DB, word *model.DailyWord) error
	FindByDate(ctx context.Context, db *gorm.DB, date string) (*model.DailyWord, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, db *gorm.DB, word *model.DailyWord) error {
	if err := db.WithContext(ctx).Create(word).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("daily word for %s already exists: %w", word.Date, model.ErrConflict)
		}
		return fmt.Errorf("failed to create daily word: %w", err)
	}
	return nil
}

func (r *gormWordRepository) FindByDate(ctx context.Context, db *gorm.DB, date string) (*model.DailyWord, error) {
	var word model.DailyWord
	err := db.WithContext(ctx).Where("date = ?", date).First(&word).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find daily word by date: %w", err)
	}
	return &word, nil
}
