// internal/model/attempt.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Attempt はユーザーの1回の推測とその結果を表します。
// 追記専用で、作成後は不変です。(user_id, date) 内の件数が「消費した挑戦回数」の正となります。
type Attempt struct {
	AttemptID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	UserID     string    `gorm:"not null;index:idx_attempt_user_date;index:idx_attempt_user_session" json:"user_id"`
	SessionID  string    `gorm:"not null;index:idx_attempt_user_session" json:"session_id"`
	Date       string    `gorm:"type:varchar(10);not null;index:idx_attempt_user_date" json:"date"`
	GuessWord  string    `gorm:"not null" json:"guess_word"`
	TargetWord string    `gorm:"not null" json:"target_word"` // 評価時点の正解単語のスナップショット
	Score      int       `gorm:"not null" json:"score"`       // 0-100
	Message    string    `gorm:"not null" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// AttemptView はステータス表示用の履歴1件分のDTO
type AttemptView struct {
	GuessWord string    `json:"guessed_word"`
	Score     int       `json:"score"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Attempt) View() AttemptView {
	return AttemptView{
		GuessWord: a.GuessWord,
		Score:     a.Score,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
	}
}
