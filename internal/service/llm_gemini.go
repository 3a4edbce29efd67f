// internal/service/llm_gemini.go
package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"image_of_the_day/internal/config"
	"image_of_the_day/internal/middleware"
	appmodel "image_of_the_day/internal/model"
)

//go:generate mockery --name LLMClient --output ./mocks --outpkg mocks --case=underscore

// LLMClient は生成AIのAPI呼び出しを抽象化します。
type LLMClient interface {
	GenerateText(ctx context.Context, model string, turns []appmodel.LLMTurn) (string, error)
	GenerateImage(ctx context.Context, model string, prompt string) ([]byte, error)
}

// --- Gemini REST API のリクエスト/レスポンス構造体 ---

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GeminiClient は Gemini API の generateContent エンドポイントを呼び出すクライアントです。
type GeminiClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// GenerateText は会話履歴を渡してテキスト応答を取得します。
func (c *GeminiClient) GenerateText(ctx context.Context, model string, turns []appmodel.LLMTurn) (string, error) {
	contents := make([]geminiContent, 0, len(turns))
	for _, turn := range turns {
		contents = append(contents, geminiContent{
			Role:  turn.Role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}

	resp, err := c.generateContent(ctx, model, &geminiRequest{Contents: contents})
	if err != nil {
		return "", err
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text, nil
		}
	}
	return "", fmt.Errorf("gemini response contains no text part")
}

// GenerateImage はプロンプトから画像を生成し、PNGバイト列を返します。
func (c *GeminiClient) GenerateImage(ctx context.Context, model string, prompt string) ([]byte, error) {
	req := &geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	resp, err := c.generateContent(ctx, model, req)
	if err != nil {
		return nil, err
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil {
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode inline image data: %w", err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("gemini response contains no image part")
}

func (c *GeminiClient) generateContent(ctx context.Context, model string, reqBody *geminiRequest) (*geminiResponse, error) {
	logger := middleware.GetLogger(ctx)

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response body: %w", err)
	}

	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		if resp.Error != nil {
			logger.Warn("Gemini API returned error",
				"status", httpResp.StatusCode,
				"api_status", resp.Error.Status,
				"api_message", resp.Error.Message,
			)
			return nil, fmt.Errorf("gemini API error (%d): %s", httpResp.StatusCode, resp.Error.Message)
		}
		return nil, fmt.Errorf("gemini API returned status %d", httpResp.StatusCode)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini response contains no candidates")
	}

	return &resp, nil
}
