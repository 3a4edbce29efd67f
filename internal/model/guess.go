// internal/model/guess.go
package model

// 正解時・採点失敗時の固定メッセージ
const (
	SuccessMessage  = "Correct! You guessed the word!"
	FallbackMessage = "Unable to process guess"
)

// 識別子が省略されたときのデフォルト値
const (
	DefaultUserID    = "anonymous"
	DefaultSessionID = "default"
)

// GuessRequest は推測送信リクエストDTO。
// user_id / session_id / date は省略可能で、サーバー側でデフォルトを補います。
type GuessRequest struct {
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Date      string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	UserWord  string `json:"user_word" validate:"required,max=64"`
}

// GuessResult は1回の推測の評価結果
type GuessResult struct {
	Score        int    `json:"score"`
	Message      string `json:"message"`
	Guessed      bool   `json:"guessed"`
	OutOfGuesses bool   `json:"out_of_guesses"`
}

// StatusRequest は日次ステータス取得リクエストDTO
type StatusRequest struct {
	UserID string `json:"user_id,omitempty"`
	Date   string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// DailyStatusResponse はその日のユーザーの進行状況
type DailyStatusResponse struct {
	Date             string        `json:"date"`
	Solved           bool          `json:"solved"`
	AttemptsUsed     int           `json:"attempts_used"`
	OutOfGuesses     bool          `json:"out_of_guesses"`
	ImageURL         string        `json:"image_url,omitempty"`
	PreviousAttempts []AttemptView `json:"previous_attempts"`
}
