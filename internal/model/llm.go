// internal/model/llm.go
package model

// LLMTurn は生成AIに渡す会話履歴の1ターン分です。Role は "user" または "model"。
type LLMTurn struct {
	Role string
	Text string
}
