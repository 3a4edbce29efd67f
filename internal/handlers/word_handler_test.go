// internal/handlers/word_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"image_of_the_day/internal/config"
	"image_of_the_day/internal/middleware"
	"image_of_the_day/internal/model"
	"image_of_the_day/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "test-secret-key"

func signTestToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func Test_WordHandler_PostWord(t *testing.T) {
	mockWordService := mocks.NewMockWordService(t)
	handler := NewWordHandler(mockWordService, testLogger())

	cfg := &config.Config{}
	cfg.Auth.Enabled = true
	cfg.Auth.SecretKey = testSecretKey

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(cfg))
		r.Post("/api/v1/words", handler.PostWord)
	})

	validBody := map[string]string{"word": "lantern", "date": "2025-06-01"}
	okResp := &model.GenerateWordResponse{
		Message:  "Daily word generated successfully",
		Date:     "2025-06-01",
		ImageKey: "2025-06-01/lantern.png",
	}

	tests := []struct {
		name           string
		token          string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectError    bool
	}{
		{
			name:  "Success - Valid request with token",
			token: signTestToken(t, testSecretKey),
			body:  validBody,
			setupMock: func() {
				mockWordService.On("GenerateDailyWord", mock.Anything, mock.MatchedBy(func(req *model.GenerateWordRequest) bool {
					return req.Word == "lantern" && req.Date == "2025-06-01"
				})).Return(okResp, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Missing Authorization header",
			token:          "",
			body:           validBody,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusUnauthorized,
			expectError:    true,
		},
		{
			name:           "Fail - Token signed with wrong key",
			token:          signTestToken(t, "wrong-secret"),
			body:           validBody,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusUnauthorized,
			expectError:    true,
		},
		{
			name:           "Fail - Missing word in body",
			token:          signTestToken(t, testSecretKey),
			body:           map[string]string{"date": "2025-06-01"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:  "Fail - Service returns conflict",
			token: signTestToken(t, testSecretKey),
			body:  validBody,
			setupMock: func() {
				mockWordService.On("GenerateDailyWord", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("WORD_ALREADY_EXISTS", "この日付の単語は既に登録されています。", "date", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createJSONRequest(t, "POST", "/api/v1/words", tc.body)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if !tc.expectError {
				var resp model.GenerateWordResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, *okResp, resp)
			} else {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error.Code)
			}
		})
	}
}

func Test_WordHandler_PostWord_AuthDisabled(t *testing.T) {
	mockWordService := mocks.NewMockWordService(t)
	handler := NewWordHandler(mockWordService, testLogger())

	cfg := &config.Config{}
	cfg.Auth.Enabled = false

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(cfg))
		r.Post("/api/v1/words", handler.PostWord)
	})

	okResp := &model.GenerateWordResponse{Message: "Daily word generated successfully", Date: "2025-06-01", ImageKey: "2025-06-01/lantern.png"}
	mockWordService.On("GenerateDailyWord", mock.Anything, mock.Anything).Return(okResp, nil).Once()

	// 認証無効時はトークンなしで通る
	req := createJSONRequest(t, "POST", "/api/v1/words", map[string]string{"word": "lantern", "date": "2025-06-01"})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}
