// internal/model/context.go
package model

// ContextKey はコンテキスト値のキー型
type ContextKey string

const (
	// AdminIDKey は認証済み管理者のIDをコンテキストに格納するためのキー
	AdminIDKey ContextKey = "adminID"
)
