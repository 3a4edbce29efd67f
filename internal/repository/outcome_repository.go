//go:generate mockery --name OutcomeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"image_of_the_day/internal/model"
)

// OutcomeRepository は (user_id, date) ごとの確定結果の永続化を扱います。
type OutcomeRepository interface {
	FindByUserAndDate(ctx context.Context, db *gorm.DB, userID, date string) (*model.DailyOutcome, error)
	Upsert(ctx context.Context, db *gorm.DB, outcome *model.DailyOutcome) error
}

type gormOutcomeRepository struct{}

func NewGormOutcomeRepository() OutcomeRepository {
	return &gormOutcomeRepository{}
}

func (r *gormOutcomeRepository) FindByUserAndDate(ctx context.Context, db *gorm.DB, userID, date string) (*model.DailyOutcome, error) {
	var outcome model.DailyOutcome
	err := db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&outcome).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find daily outcome: %w", err)
	}
	return &outcome, nil
}

// Upsert は主キー (user_id, date) が衝突した場合に solved / word / updated_at を更新します。
func (r *gormOutcomeRepository) Upsert(ctx context.Context, db *gorm.DB, outcome *model.DailyOutcome) error {
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"solved", "word", "updated_at"}),
		}).
		Create(outcome).Error
	if err != nil {
		return fmt.Errorf("failed to upsert daily outcome: %w", err)
	}
	return nil
}
