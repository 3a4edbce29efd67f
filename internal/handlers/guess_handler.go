// internal/handlers/guess_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"image_of_the_day/internal/model"
	"image_of_the_day/internal/service"
	"image_of_the_day/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type GuessHandler struct {
	service service.GuessService
	logger  *slog.Logger
}

func NewGuessHandler(s service.GuessService, logger *slog.Logger) *GuessHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuessHandler{
		service: s,
		logger:  logger,
	}
}

// PostGuess は推測を受け付けて評価結果を返すハンドラ
func (h *GuessHandler) PostGuess(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostGuess"))

	var req model.GuessRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	applyGuessDefaults(&req)
	logger = logger.With(slog.String("user_id", req.UserID), slog.String("date", req.Date))

	result, err := h.service.SubmitGuess(r.Context(), &req)
	if err != nil {
		logger.Warn("Error submitting guess in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Guess submitted successfully",
		slog.Int("score", result.Score),
		slog.Bool("guessed", result.Guessed),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// PostStatus はその日のユーザーの進行状況を返すハンドラ
func (h *GuessHandler) PostStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostStatus"))

	var req model.StatusRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	if req.UserID == "" {
		req.UserID = model.DefaultUserID
	}
	if req.Date == "" {
		req.Date = todayString()
	}
	logger = logger.With(slog.String("user_id", req.UserID), slog.String("date", req.Date))

	status, err := h.service.GetDailyStatus(r.Context(), req.UserID, req.Date)
	if err != nil {
		logger.Error("Error getting daily status in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, status, logger)
}

// applyGuessDefaults は省略された識別子と日付をサーバー側で補います。
// 日付はリクエスト到着時に一度だけ決定し、以降の処理で使い回します。
func applyGuessDefaults(req *model.GuessRequest) {
	if req.UserID == "" {
		req.UserID = model.DefaultUserID
	}
	if req.SessionID == "" {
		req.SessionID = model.DefaultSessionID
	}
	if req.Date == "" {
		req.Date = todayString()
	}
}

func todayString() string {
	return time.Now().Format("2006-01-02")
}

// handleValidationError はバリデーションエラーを翻訳してクライアントに返す共通処理です。
func handleValidationError(w http.ResponseWriter, logger *slog.Logger, err error, req interface{}) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

		// 最初のエラーを代表としてクライアントに返す
		firstErr := validationErrors[0]
		translatedMsg := firstErr.Translate(webutil.Trans)

		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
	} else {
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
	}
}
