// internal/repository/attempt_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"image_of_the_day/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAttempt(userID, sessionID, date, guess string, score int, createdAt time.Time) *model.Attempt {
	return &model.Attempt{
		AttemptID:  uuid.New(),
		UserID:     userID,
		SessionID:  sessionID,
		Date:       date,
		GuessWord:  guess,
		TargetWord: "lantern",
		Score:      score,
		Message:    "hint",
		CreatedAt:  createdAt,
	}
}

func Test_gormAttemptRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormAttemptRepository()

	t.Run("正常系: セッション履歴は古い順で返る", func(t *testing.T) {
		db := setupTestDB(t)
		base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

		require.NoError(t, repo.Create(ctx, db, newAttempt("u1", "s1", "2025-06-01", "second", 50, base.Add(time.Minute))))
		require.NoError(t, repo.Create(ctx, db, newAttempt("u1", "s1", "2025-06-01", "first", 30, base)))
		// 他セッション・他ユーザーは混ざらない
		require.NoError(t, repo.Create(ctx, db, newAttempt("u1", "s2", "2025-06-01", "other-session", 10, base)))
		require.NoError(t, repo.Create(ctx, db, newAttempt("u2", "s1", "2025-06-01", "other-user", 10, base)))

		attempts, err := repo.FindBySession(ctx, db, "u1", "s1", "2025-06-01")
		require.NoError(t, err)
		require.Len(t, attempts, 2)
		assert.Equal(t, "first", attempts[0].GuessWord)
		assert.Equal(t, "second", attempts[1].GuessWord)
	})

	t.Run("正常系: ユーザー別の件数はセッションを跨いで数える", func(t *testing.T) {
		db := setupTestDB(t)
		base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

		require.NoError(t, repo.Create(ctx, db, newAttempt("u1", "s1", "2025-06-01", "a", 10, base)))
		require.NoError(t, repo.Create(ctx, db, newAttempt("u1", "s2", "2025-06-01", "b", 20, base)))
		require.NoError(t, repo.Create(ctx, db, newAttempt("u1", "s1", "2025-06-02", "other-day", 30, base)))

		count, err := repo.CountByUserAndDate(ctx, db, "u1", "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		attempts, err := repo.FindByUserAndDate(ctx, db, "u1", "2025-06-01")
		require.NoError(t, err)
		assert.Len(t, attempts, 2)
	})

	t.Run("正常系: トランザクション内の作成はロールバックで消える", func(t *testing.T) {
		db := setupTestDB(t)
		base := time.Now()

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := repo.Create(ctx, tx, newAttempt("u1", "s1", "2025-06-01", "a", 10, base)); err != nil {
				return err
			}
			return model.ErrInternalServer // ロールバックさせる
		})
		require.Error(t, err)

		count, err := repo.CountByUserAndDate(ctx, db, "u1", "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
