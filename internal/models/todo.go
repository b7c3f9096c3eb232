// Package modelsはTodoを定義します。
package models

// Todo はリストの1件のTodoを表します。
type Todo struct {
	ID        string `json:"id"`        // UUIDv4 (Storeが採番)
	Title     string `json:"title"`     // タイトル（そのまま保存）
	Completed bool   `json:"completed"` // 完了状態（作成時はfalse）
}

// CreateTodoRequest は POST /todos のリクエストボディです。
// Title をポインタにすることで、titleがない場合やnullの場合はbindingエラーになり、
// 空文字列は受け入れられます。
type CreateTodoRequest struct {
	Title *string `json:"title" binding:"required"`
}
