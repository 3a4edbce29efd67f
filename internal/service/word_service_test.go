// internal/service/word_service_test.go
package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"image_of_the_day/internal/model"
	repomocks "image_of_the_day/internal/repository/mocks"
	svcmocks "image_of_the_day/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_wordService_GenerateDailyWord(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGuess()

	mockWordRepo := new(repomocks.WordRepository)
	mockLLM := new(svcmocks.MockLLMClient)
	mockStore := new(svcmocks.MockImageStore)

	imageModel := "gemini-2.5-flash-image-preview"
	svc := NewWordService(db, mockWordRepo, mockLLM, mockStore, imageModel)

	pngBytes := []byte{0x89, 'P', 'N', 'G'}

	tests := []struct {
		name      string
		req       *model.GenerateWordRequest
		setupMock func()
		wantErr   error
		wantKey   string
	}{
		{
			name: "正常系: 画像を生成して単語を登録する",
			req:  &model.GenerateWordRequest{Word: "Lantern", Date: testDate},
			setupMock: func() {
				mockWordRepo.On("FindByDate", ctx, mock.Anything, testDate).Return(nil, model.ErrNotFound)
				mockLLM.On("GenerateImage", ctx, imageModel, mock.MatchedBy(func(prompt string) bool {
					// プロンプトには単語が含まれる (小文字に正規化済み)
					return strings.Contains(prompt, `"lantern"`)
				})).Return(pngBytes, nil)
				mockStore.On("Put", ctx, testDate+"/lantern.png", pngBytes, "image/png").Return(nil)
				mockWordRepo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(w *model.DailyWord) bool {
					return w.Date == testDate && w.Word == "lantern" && w.ImageKey == testDate+"/lantern.png"
				})).Return(nil)
			},
			wantKey: testDate + "/lantern.png",
		},
		{
			name: "異常系: 既に登録済みの日付はConflict",
			req:  &model.GenerateWordRequest{Word: "lantern", Date: testDate},
			setupMock: func() {
				mockWordRepo.On("FindByDate", ctx, mock.Anything, testDate).
					Return(&model.DailyWord{Date: testDate, Word: "other"}, nil)
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: 画像生成の失敗は内部エラー",
			req:  &model.GenerateWordRequest{Word: "lantern", Date: testDate},
			setupMock: func() {
				mockWordRepo.On("FindByDate", ctx, mock.Anything, testDate).Return(nil, model.ErrNotFound)
				mockLLM.On("GenerateImage", ctx, imageModel, mock.Anything).Return(nil, errors.New("model unavailable"))
			},
			wantErr: model.ErrInternalServer,
		},
		{
			name: "異常系: 画像の保存失敗は内部エラー",
			req:  &model.GenerateWordRequest{Word: "lantern", Date: testDate},
			setupMock: func() {
				mockWordRepo.On("FindByDate", ctx, mock.Anything, testDate).Return(nil, model.ErrNotFound)
				mockLLM.On("GenerateImage", ctx, imageModel, mock.Anything).Return(pngBytes, nil)
				mockStore.On("Put", ctx, testDate+"/lantern.png", pngBytes, "image/png").Return(errors.New("access denied"))
			},
			wantErr: model.ErrInternalServer,
		},
		{
			name:      "異常系: 空の単語はバリデーションエラー",
			req:       &model.GenerateWordRequest{Word: "   ", Date: testDate},
			setupMock: func() { /* 何も呼ばれない */ },
			wantErr:   model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWordRepo.Mock = mock.Mock{}
			mockLLM.Mock = mock.Mock{}
			mockStore.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock()
			}

			resp, err := svc.GenerateDailyWord(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, tt.wantKey, resp.ImageKey)
				assert.Equal(t, testDate, resp.Date)
			}
			mockWordRepo.AssertExpectations(t)
			mockLLM.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}
