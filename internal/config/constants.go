// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "ImageOfTheDay"
	AppVersion = "1.1.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultLogLevel             = "info"
	DefaultMaxAttempts          = 5
	DefaultScorerTimeoutSeconds = 30
)

// Gemini API のデフォルト
const (
	DefaultGeminiBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiChatModel  = "gemini-2.0-flash"
	DefaultGeminiImageModel = "gemini-2.5-flash-image-preview"
)
