// internal/service/llm_gemini_test.go
package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"image_of_the_day/internal/config"
	"image_of_the_day/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeminiClient(baseURL string) *GeminiClient {
	return NewGeminiClient(&config.GeminiConfig{
		APIKey:         "test-api-key",
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
	})
}

func Test_GeminiClient_GenerateText(t *testing.T) {
	t.Run("正常系: テキスト応答を返す", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, "test-api-key", r.Header.Get("x-goog-api-key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"score\": 42, \"message\": \"hint\"}"}]}}]}`))
		}))
		defer server.Close()

		client := newTestGeminiClient(server.URL)
		text, err := client.GenerateText(context.Background(), "gemini-2.0-flash", []model.LLMTurn{
			{Role: "user", Text: "My guess: candle"},
		})

		require.NoError(t, err)
		assert.Equal(t, `{"score": 42, "message": "hint"}`, text)
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)

		contents, ok := gotBody["contents"].([]interface{})
		require.True(t, ok)
		require.Len(t, contents, 1)
	})

	t.Run("異常系: APIエラーはエラーとして返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`))
		}))
		defer server.Close()

		client := newTestGeminiClient(server.URL)
		_, err := client.GenerateText(context.Background(), "gemini-2.0-flash", []model.LLMTurn{
			{Role: "user", Text: "My guess: candle"},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Resource has been exhausted")
	})

	t.Run("異常系: candidatesが空ならエラー", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client := newTestGeminiClient(server.URL)
		_, err := client.GenerateText(context.Background(), "gemini-2.0-flash", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no candidates")
	})
}

func Test_GeminiClient_GenerateImage(t *testing.T) {
	t.Run("正常系: inlineDataをデコードして返す", func(t *testing.T) {
		pngBytes := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
		encoded := base64.StdEncoding.EncodeToString(pngBytes)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			// 画像生成ではモダリティ指定を付ける
			genCfg, ok := body["generationConfig"].(map[string]interface{})
			require.True(t, ok)
			assert.Contains(t, genCfg["responseModalities"], "IMAGE")

			w.Header().Set("Content-Type", "application/json")
			resp := map[string]interface{}{
				"candidates": []map[string]interface{}{
					{"content": map[string]interface{}{
						"role": "model",
						"parts": []map[string]interface{}{
							{"text": "Here is your image"},
							{"inlineData": map[string]string{"mimeType": "image/png", "data": encoded}},
						},
					}},
				},
			}
			json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		client := newTestGeminiClient(server.URL)
		data, err := client.GenerateImage(context.Background(), "gemini-2.5-flash-image-preview", "draw something")

		require.NoError(t, err)
		assert.Equal(t, pngBytes, data)
	})

	t.Run("異常系: 画像パートがない応答はエラー", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"sorry, no image"}]}}]}`))
		}))
		defer server.Close()

		client := newTestGeminiClient(server.URL)
		_, err := client.GenerateImage(context.Background(), "gemini-2.5-flash-image-preview", "draw something")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no image part")
	})
}
