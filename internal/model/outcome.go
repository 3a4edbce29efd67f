// internal/model/outcome.go
package model

import (
	"time"
)

// DailyOutcome は (user_id, date) ごとの確定結果を表します。
// 正解した瞬間に Solved=true で upsert され、以降その日の推測は拒否されます。
type DailyOutcome struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);primaryKey" json:"date"`
	Solved    bool      `gorm:"not null;default:false" json:"solved"`
	Word      string    `gorm:"not null" json:"word"` // 当日の正解単語のスナップショット
	UpdatedAt time.Time `json:"updated_at"`
}

func (DailyOutcome) TableName() string {
	return "daily_outcomes"
}
