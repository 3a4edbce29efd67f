// internal/service/scorer.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"image_of_the_day/internal/middleware"
	"image_of_the_day/internal/model"
)

//go:generate mockery --name Scorer --output ./mocks --outpkg mocks --case=underscore

// Scorer は推測を採点し、スコア (0-100) とヒントメッセージを返します。
// 採点に失敗してもエラーは返さず、フォールバック値 (0, FallbackMessage) に落とします。
// 推測の失敗でリクエスト全体を落とさないためです。
type Scorer interface {
	Score(ctx context.Context, secretWord, guess string, history []model.Attempt) (int, string)
}

type geminiScorer struct {
	llm       LLMClient
	chatModel string
}

func NewGeminiScorer(llm LLMClient, chatModel string) Scorer {
	return &geminiScorer{
		llm:       llm,
		chatModel: chatModel,
	}
}

// scoreResult は採点応答のJSON。Score を json.Number で受けることで
// 整数 (100) と小数 (99.5) のどちらで返されてもパースできます。
type scoreResult struct {
	Score   json.Number `json:"score"`
	Message string      `json:"message"`
}

func (s *geminiScorer) Score(ctx context.Context, secretWord, guess string, history []model.Attempt) (int, string) {
	logger := middleware.GetLogger(ctx)

	turns := s.buildTurns(secretWord, guess, history)

	text, err := s.llm.GenerateText(ctx, s.chatModel, turns)
	if err != nil {
		logger.Warn("Scorer LLM call failed, falling back", "error", err)
		return 0, model.FallbackMessage
	}

	result, err := parseScoreResponse(text)
	if err != nil {
		logger.Warn("Scorer response parse failed, falling back", "error", err, "response", text)
		return 0, model.FallbackMessage
	}

	return result.score, result.message
}

// buildTurns はゲームマスター役の指示、モデルの応諾、過去の推測の再現、
// 今回の推測、の順で会話履歴を組み立てます。
func (s *geminiScorer) buildTurns(secretWord, guess string, history []model.Attempt) []model.LLMTurn {
	turns := make([]model.LLMTurn, 0, 2*len(history)+3)

	turns = append(turns, model.LLMTurn{
		Role: "user",
		Text: fmt.Sprintf("You are a game master. The secret word is '%s'. Your task is to evaluate a user's guess. Provide a score from 1-100 on how close their guess is, and a creative hint in the 'message' field. **Do not reveal the secret word '%s' or direct synonyms in your response.** Your entire response must be only a single JSON object with 'score' (integer) and 'message' (string) keys.", secretWord, secretWord),
	})
	turns = append(turns, model.LLMTurn{
		Role: "model",
		Text: "I'll help you guess the word! Send me your guesses and I'll rate them and give you feedback.",
	})

	for _, attempt := range history {
		turns = append(turns, model.LLMTurn{
			Role: "user",
			Text: fmt.Sprintf("My guess: %s", attempt.GuessWord),
		})
		reply, _ := json.Marshal(map[string]interface{}{
			"score":   attempt.Score,
			"message": attempt.Message,
		})
		turns = append(turns, model.LLMTurn{
			Role: "model",
			Text: string(reply),
		})
	}

	turns = append(turns, model.LLMTurn{
		Role: "user",
		Text: fmt.Sprintf("My guess: %s", guess),
	})

	return turns
}

type parsedScore struct {
	score   int
	message string
}

// parseScoreResponse はLLMの応答テキストからスコアJSONを取り出します。
// コードフェンス付きで返ってくることがあるため、先に剥がします。
func parseScoreResponse(text string) (*parsedScore, error) {
	cleaned := cleanJSONContent(text)

	var result scoreResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("invalid score JSON: %w", err)
	}

	score, err := scoreToInt(result.Score)
	if err != nil {
		return nil, err
	}

	// スコアは 0-100 に丸める
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	message := result.Message
	if message == "" {
		message = "No feedback available"
	}

	return &parsedScore{score: score, message: message}, nil
}

// scoreToInt は整数・小数どちらの表記でも整数スコアに変換します。
// 小数部を持たない値 (100.0 など) は整数として扱います。
func scoreToInt(n json.Number) (int, error) {
	if n.String() == "" {
		return 0, fmt.Errorf("score is missing")
	}
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("score is not a number: %q", n.String())
	}
	return int(f), nil
}

// cleanJSONContent はマークダウンのコードフェンスを取り除きます。
func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
