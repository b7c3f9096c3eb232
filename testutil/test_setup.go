package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-inmem-todo/backend/internal/models"
	"go-inmem-todo/backend/internal/routes"
	"go-inmem-todo/backend/internal/services"
	"go-inmem-todo/backend/internal/todo"
)

// TestOrigin はCORSヘッダーを得るためのクロスオリジンです。
// httptest.NewRequest のHostは example.com なので、それ以外を使います。
const TestOrigin = "http://localhost:3000"

// SetupTestRouter はテスト用のGinルーターと空のStoreをセットアップします。
func SetupTestRouter(t *testing.T) (*gin.Engine, *todo.Store) {
	return SetupTestRouterWithPolicy(t, services.TitlePolicy{})
}

// SetupTestRouterWithPolicy はタイトル検証の設定を指定してルーターをセットアップします。
func SetupTestRouterWithPolicy(t *testing.T, policy services.TitlePolicy) (*gin.Engine, *todo.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := log.New(io.Discard)
	store := todo.NewStore()
	todoService := services.NewTodoService(store, policy, logger)
	return routes.SetupRouter(todoService, logger), store
}

// Do はリクエストを送り、レスポンスを返します。body が nil の場合はボディなしで送ります。
func Do(t *testing.T, router http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// CreateTestTodo はテスト用のTODOをAPI経由で作成します。
func CreateTestTodo(t *testing.T, router http.Handler, title string) models.Todo {
	t.Helper()
	body, err := json.Marshal(map[string]string{"title": title})
	require.NoError(t, err)

	resp := Do(t, router, http.MethodPost, "/todos", body)
	require.Equal(t, http.StatusOK, resp.Code, "TODO作成に失敗しました: %s", resp.Body.String())

	var createdTodo models.Todo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &createdTodo))
	return createdTodo
}

// ListTodos は GET /todos の結果を返します。
func ListTodos(t *testing.T, router http.Handler) []models.Todo {
	t.Helper()
	resp := Do(t, router, http.MethodGet, "/todos", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var todos []models.Todo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &todos))
	return todos
}
