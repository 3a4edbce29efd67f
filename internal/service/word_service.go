// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"image_of_the_day/internal/middleware"
	"image_of_the_day/internal/model"
	"image_of_the_day/internal/repository"

	"gorm.io/gorm"
)

//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore

type WordService interface {
	GenerateDailyWord(ctx context.Context, req *model.GenerateWordRequest) (*model.GenerateWordResponse, error)
}

type wordService struct {
	db         *gorm.DB
	wordRepo   repository.WordRepository
	llm        LLMClient
	imageStore ImageStore
	imageModel string
}

func NewWordService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	llm LLMClient,
	imageStore ImageStore,
	imageModel string,
) WordService {
	return &wordService{
		db:         db,
		wordRepo:   wordRepo,
		llm:        llm,
		imageStore: imageStore,
		imageModel: imageModel,
	}
}

// GenerateDailyWord は指定日の単語を登録し、ヒント画像を生成して保存します。
// 既に登録済みの日付に対しては Conflict を返します。
func (s *wordService) GenerateDailyWord(ctx context.Context, req *model.GenerateWordRequest) (*model.GenerateWordResponse, error) {
	logger := middleware.GetLogger(ctx)

	word := strings.TrimSpace(strings.ToLower(req.Word))
	if word == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "単語を入力してください。", "word", model.ErrInvalidInput)
	}

	// 1. 重複チェック (主キー制約でも守られるが、画像生成の無駄打ちを避ける)
	if _, err := s.wordRepo.FindByDate(ctx, s.db, req.Date); err == nil {
		return nil, model.NewAppError("WORD_ALREADY_EXISTS", "この日付の単語は既に登録されています。", "date", model.ErrConflict)
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to check existing daily word", "error", err, "date", req.Date)
		return nil, model.ErrInternalServer
	}

	// 2. ヒント画像を生成
	prompt := buildImagePrompt(word)
	imageData, err := s.llm.GenerateImage(ctx, s.imageModel, prompt)
	if err != nil {
		logger.Error("Failed to generate hint image", "error", err, "date", req.Date)
		return nil, model.ErrInternalServer
	}

	// 3. ストレージに保存
	key := fmt.Sprintf("%s/%s.png", req.Date, word)
	if err := s.imageStore.Put(ctx, key, imageData, "image/png"); err != nil {
		logger.Error("Failed to store hint image", "error", err, "key", key)
		return nil, model.ErrInternalServer
	}

	// 4. 単語レコードを作成
	record := &model.DailyWord{
		Date:     req.Date,
		Word:     word,
		ImageKey: key,
	}
	if err := s.wordRepo.Create(ctx, s.db, record); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("WORD_ALREADY_EXISTS", "この日付の単語は既に登録されています。", "date", model.ErrConflict)
		}
		logger.Error("Failed to create daily word", "error", err, "date", req.Date)
		return nil, model.ErrInternalServer
	}

	logger.Info("Daily word generated", "date", req.Date, "image_key", key)

	return &model.GenerateWordResponse{
		Message:  "Daily word generated successfully",
		Date:     req.Date,
		ImageKey: key,
	}, nil
}

// buildImagePrompt は単語を直接描かずに連想させる画像の生成指示を組み立てます。
func buildImagePrompt(word string) string {
	return fmt.Sprintf("Create a visually creative and slightly abstract image that subtly hints at the word \"%s\" without showing it directly. Use metaphorical, symbolic, or thematic elements to suggest the meaning of the word. The image should make the viewer think and infer the word based on visual clues. Avoid text or overly literal depictions. Focus on making the image tricky but guessable.", word)
}
