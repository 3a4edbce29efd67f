// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"image_of_the_day/internal/model"
	"image_of_the_day/internal/service"
	"image_of_the_day/internal/webutil"
)

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// PostWord は日次単語を登録し、ヒント画像を生成するハンドラ。
// 認証ミドルウェアの背後に置くこと。
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWord"))

	var req model.GenerateWordRequest
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

	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	logger = logger.With(slog.String("date", req.Date))

	resp, err := h.service.GenerateDailyWord(r.Context(), &req)
	if err != nil {
		logger.Error("Error generating daily word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Daily word generated successfully", slog.String("image_key", resp.ImageKey))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}
