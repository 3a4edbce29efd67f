// internal/repository/outcome_repository_test.go
package repository

import (
	"context"
	"testing"

	"image_of_the_day/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_gormOutcomeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormOutcomeRepository()

	t.Run("正常系: Upsertで新規作成できる", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, repo.Upsert(ctx, db, &model.DailyOutcome{
			UserID: "u1", Date: "2025-06-01", Solved: false, Word: "lantern",
		}))

		found, err := repo.FindByUserAndDate(ctx, db, "u1", "2025-06-01")
		require.NoError(t, err)
		assert.False(t, found.Solved)
		assert.Equal(t, "lantern", found.Word)
	})

	t.Run("正常系: 同じキーへのUpsertは上書きになる", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, repo.Upsert(ctx, db, &model.DailyOutcome{
			UserID: "u1", Date: "2025-06-01", Solved: false, Word: "lantern",
		}))
		require.NoError(t, repo.Upsert(ctx, db, &model.DailyOutcome{
			UserID: "u1", Date: "2025-06-01", Solved: true, Word: "lantern",
		}))

		found, err := repo.FindByUserAndDate(ctx, db, "u1", "2025-06-01")
		require.NoError(t, err)
		assert.True(t, found.Solved)

		// 行が増えていないこと
		var count int64
		require.NoError(t, db.Model(&model.DailyOutcome{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("異常系: 未登録のキーは ErrNotFound", func(t *testing.T) {
		db := setupTestDB(t)

		_, err := repo.FindByUserAndDate(ctx, db, "nobody", "2025-06-01")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
