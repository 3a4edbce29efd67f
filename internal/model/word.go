// internal/model/word.go
package model

import (
	"time"
)

// DailyWord はその日の正解単語とヒント画像を表します。
// 生成ジョブが1日1回作成し、以降は変更されません。
type DailyWord struct {
	Date      string    `gorm:"type:varchar(10);primaryKey" json:"date"` // "YYYY-MM-DD"
	Word      string    `gorm:"not null" json:"word"`                    // 比較は大文字小文字を区別しない
	ImageKey  string    `gorm:"not null" json:"image_key"`               // ストレージ上のオブジェクトキー
	CreatedAt time.Time `json:"created_at"`
}

func (DailyWord) TableName() string {
	return "daily_words"
}

// 日次単語生成リクエストDTO
type GenerateWordRequest struct {
	Word string `json:"word" validate:"required,min=1,max=64"`
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// 生成成功時のレスポンス
type GenerateWordResponse struct {
	Message  string `json:"message"`
	Date     string `json:"date"`
	ImageKey string `json:"image_key"`
}
