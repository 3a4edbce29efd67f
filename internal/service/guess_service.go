// internal/service/guess_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"image_of_the_day/internal/middleware"
	"image_of_the_day/internal/model"
	"image_of_the_day/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name GuessService --output ./mocks --outpkg mocks --case=underscore

type GuessService interface {
	SubmitGuess(ctx context.Context, req *model.GuessRequest) (*model.GuessResult, error)
	GetDailyStatus(ctx context.Context, userID, date string) (*model.DailyStatusResponse, error)
}

type guessService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo    repository.WordRepository
	attemptRepo repository.AttemptRepository
	outcomeRepo repository.OutcomeRepository
	scorer      Scorer
	imageStore  ImageStore
	maxAttempts int
}

func NewGuessService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	attemptRepo repository.AttemptRepository,
	outcomeRepo repository.OutcomeRepository,
	scorer Scorer,
	imageStore ImageStore,
	maxAttempts int,
) GuessService {
	return &guessService{
		db:          db,
		wordRepo:    wordRepo,
		attemptRepo: attemptRepo,
		outcomeRepo: outcomeRepo,
		scorer:      scorer,
		imageStore:  imageStore,
		maxAttempts: maxAttempts,
	}
}

// SubmitGuess は推測を評価して記録します。
// 挑戦回数の上限はトランザクション内で再カウントして強制します。
// 履歴が正であり、クライアントから回数を自己申告させることはしません。
func (s *guessService) SubmitGuess(ctx context.Context, req *model.GuessRequest) (*model.GuessResult, error) {
	logger := middleware.GetLogger(ctx)

	guess := strings.TrimSpace(req.UserWord)
	if guess == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "推測する単語を入力してください。", "user_word", model.ErrInvalidInput)
	}

	// 1. 当日の単語を取得
	word, err := s.wordRepo.FindByDate(ctx, s.db, req.Date)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NO_WORD_CONFIGURED", "本日の単語が設定されていません。", "", model.ErrNoWordConfigured)
		}
		logger.Error("Failed to find daily word", "error", err, "date", req.Date)
		return nil, model.ErrInternalServer
	}

	// 2. 既に正解済みなら拒否
	outcome, err := s.outcomeRepo.FindByUserAndDate(ctx, s.db, req.UserID, req.Date)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to find daily outcome", "error", err)
		return nil, model.ErrInternalServer
	}
	if outcome != nil && outcome.Solved {
		return nil, model.NewAppError("ALREADY_SOLVED", "本日は既に正解しています。", "", model.ErrAlreadySolved)
	}

	// 3. 挑戦回数の上限チェック (早期リターン用。確定はトランザクション内で行う)
	used, err := s.attemptRepo.CountByUserAndDate(ctx, s.db, req.UserID, req.Date)
	if err != nil {
		logger.Error("Failed to count attempts", "error", err)
		return nil, model.ErrInternalServer
	}
	if used >= int64(s.maxAttempts) {
		return nil, model.NewAppError("NO_ATTEMPTS_REMAINING", "本日の挑戦回数を使い切りました。", "", model.ErrNoAttemptsRemaining)
	}

	// 4. 推測を評価する。完全一致なら採点器は呼ばない。
	var score int
	var message string
	guessed := strings.EqualFold(guess, word.Word)
	if guessed {
		score = 100
		message = model.SuccessMessage
	} else {
		history, err := s.attemptRepo.FindBySession(ctx, s.db, req.UserID, req.SessionID, req.Date)
		if err != nil {
			logger.Error("Failed to load session history", "error", err)
			return nil, model.ErrInternalServer
		}
		score, message = s.scorer.Score(ctx, word.Word, guess, history)

		// 採点器が100点を付けた場合も正解として扱う
		if score == 100 {
			guessed = true
			message = model.SuccessMessage
		}
	}

	// 5. 記録 (履歴 + 確定結果) を同一トランザクションで行う
	var usedAfter int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同時リクエストに備えてトランザクション内で再カウント
		count, err := s.attemptRepo.CountByUserAndDate(ctx, tx, req.UserID, req.Date)
		if err != nil {
			return model.ErrInternalServer
		}
		if count >= int64(s.maxAttempts) {
			return model.NewAppError("NO_ATTEMPTS_REMAINING", "本日の挑戦回数を使い切りました。", "", model.ErrNoAttemptsRemaining)
		}

		attempt := &model.Attempt{
			AttemptID:  uuid.New(),
			UserID:     req.UserID,
			SessionID:  req.SessionID,
			Date:       req.Date,
			GuessWord:  guess,
			TargetWord: word.Word,
			Score:      score,
			Message:    message,
		}
		if err := s.attemptRepo.Create(ctx, tx, attempt); err != nil {
			return model.ErrInternalServer
		}
		usedAfter = count + 1

		// 結果レコードは毎回upsertする。正解済みの日は手前で拒否されるため、
		// solved が true から false に戻ることはない。
		record := &model.DailyOutcome{
			UserID: req.UserID,
			Date:   req.Date,
			Solved: guessed,
			Word:   word.Word,
		}
		if err := s.outcomeRepo.Upsert(ctx, tx, record); err != nil {
			return model.ErrInternalServer
		}

		return nil // コミット
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for SubmitGuess", "error", err)
		return nil, model.ErrInternalServer
	}

	return &model.GuessResult{
		Score:        score,
		Message:      message,
		Guessed:      guessed,
		OutOfGuesses: guessed || usedAfter >= int64(s.maxAttempts),
	}, nil
}

// GetDailyStatus はその日のユーザーの進行状況を返します。
// 単語が未設定でも履歴は返せるため、エラーにはしません。
func (s *guessService) GetDailyStatus(ctx context.Context, userID, date string) (*model.DailyStatusResponse, error) {
	logger := middleware.GetLogger(ctx)

	solved := false
	outcome, err := s.outcomeRepo.FindByUserAndDate(ctx, s.db, userID, date)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to find daily outcome", "error", err)
		return nil, model.ErrInternalServer
	}
	if outcome != nil {
		solved = outcome.Solved
	}

	attempts, err := s.attemptRepo.FindByUserAndDate(ctx, s.db, userID, date)
	if err != nil {
		logger.Error("Failed to load attempts", "error", err)
		return nil, model.ErrInternalServer
	}

	views := make([]model.AttemptView, 0, len(attempts))
	for i := range attempts {
		views = append(views, attempts[i].View())
	}

	var imageURL string
	word, err := s.wordRepo.FindByDate(ctx, s.db, date)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to find daily word", "error", err, "date", date)
			return nil, model.ErrInternalServer
		}
		// 単語が未設定の日はヒント画像なしで返す
	} else if word.ImageKey != "" {
		imageURL = s.imageStore.PublicURL(word.ImageKey)
	}

	used := len(attempts)
	return &model.DailyStatusResponse{
		Date:             date,
		Solved:           solved,
		AttemptsUsed:     used,
		OutOfGuesses:     !solved && used >= s.maxAttempts,
		ImageURL:         imageURL,
		PreviousAttempts: views,
	}, nil
}
