// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用

	// ゲームルール違反 (いずれも当日中は回復不能)
	ErrNoWordConfigured    = errors.New("no word configured for date")
	ErrAlreadySolved       = errors.New("word already solved for date")
	ErrNoAttemptsRemaining = errors.New("no attempts remaining for date")
)

// ErrorDetail はAPIエラーレスポンスに含める詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコードとクライアント向けメッセージを持つカスタムエラー型です。
// Unwrap でラップした sentinel エラーを返すため、errors.Is での判定がそのまま使えます。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail.Code, e.Err)
	}
	return e.Detail.Code
}

func (e *AppError) Unwrap() error {
	return e.Err
}
