// internal/repository/word_repository_test.go
package repository

import (
	"context"
	"testing"

	"image_of_the_day/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はマイグレーション済みのインメモリDBを返します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.DailyWord{}, &model.Attempt{}, &model.DailyOutcome{}))
	return db
}

func Test_gormWordRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormWordRepository()

	t.Run("正常系: 作成した単語を日付で引ける", func(t *testing.T) {
		db := setupTestDB(t)

		word := &model.DailyWord{Date: "2025-06-01", Word: "lantern", ImageKey: "2025-06-01/lantern.png"}
		require.NoError(t, repo.Create(ctx, db, word))

		found, err := repo.FindByDate(ctx, db, "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, "lantern", found.Word)
		assert.Equal(t, "2025-06-01/lantern.png", found.ImageKey)
	})

	t.Run("異常系: 存在しない日付は ErrNotFound", func(t *testing.T) {
		db := setupTestDB(t)

		_, err := repo.FindByDate(ctx, db, "1999-01-01")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 同じ日付の二重登録は ErrConflict", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, repo.Create(ctx, db, &model.DailyWord{Date: "2025-06-01", Word: "lantern", ImageKey: "a.png"}))
		err := repo.Create(ctx, db, &model.DailyWord{Date: "2025-06-01", Word: "candle", ImageKey: "b.png"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}
