package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"go-inmem-todo/backend/internal/models"
	"go-inmem-todo/backend/internal/services"
	"go-inmem-todo/backend/internal/todo"
)

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// GetTodosHandler はTodoリストを取得します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.todoService.GetTodos())
}

// CreateTodoHandler は新しいTodoを作成します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var req models.CreateTodoRequest
	if err := bindCreateRequest(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	createdTodo, err := h.todoService.CreateTodo(*req.Title)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid title", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}
	c.JSON(http.StatusOK, createdTodo)
}

// ToggleTodoHandler はTodoの完了状態を反転します。見つからない場合は空の404を返します。
func (h *TodoHandler) ToggleTodoHandler(c *gin.Context) {
	toggledTodo, err := h.todoService.ToggleTodo(c.Param("id"))
	if err != nil {
		if errors.Is(err, todo.ErrTodoNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toggledTodo)
}

// DeleteTodoHandler はTodoを削除します。成功時も失敗時もボディは空です。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	if err := h.todoService.DeleteTodo(c.Param("id")); err != nil {
		if errors.Is(err, todo.ErrTodoNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// bindCreateRequest はボディ全体を1つのJSON値として読み込み、bindingタグで検証します。
// ShouldBindJSON と違い、JSON値の後ろに余分なデータがある場合もエラーにします。
func bindCreateRequest(c *gin.Context, req *models.CreateTodoRequest) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, req); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(req)
}
