package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"go-inmem-todo/backend/internal/models"
	"go-inmem-todo/backend/internal/todo"
)

// ErrInvalidTitle はタイトル検証が有効なときに不正なタイトルを受け取った場合のエラーです。
var ErrInvalidTitle = errors.New("invalid title")

// TitlePolicy はタイトル検証の設定です。Validate が false の場合はすべて受け入れます。
type TitlePolicy struct {
	Validate  bool
	MaxLength int // runes; 0 means no limit
}

// TodoService はTodo関連のビジネスロジックを扱います。
type TodoService struct {
	store  *todo.Store
	policy TitlePolicy
	logger *log.Logger
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(store *todo.Store, policy TitlePolicy, logger *log.Logger) *TodoService {
	if logger == nil {
		logger = log.Default()
	}
	return &TodoService{store: store, policy: policy, logger: logger}
}

// GetTodos はすべてのTodoを挿入順で取得します。
func (s *TodoService) GetTodos() []models.Todo {
	return s.store.List()
}

// CreateTodo は新しいTodoを作成します。
func (s *TodoService) CreateTodo(title string) (models.Todo, error) {
	if err := s.checkTitle(title); err != nil {
		return models.Todo{}, err
	}
	created := s.store.Create(title)
	s.logger.Debug("todo created", "id", created.ID)
	return created, nil
}

// ToggleTodo はTodoの完了状態を反転します。
func (s *TodoService) ToggleTodo(id string) (models.Todo, error) {
	toggled, err := s.store.Toggle(id)
	if err != nil {
		return models.Todo{}, fmt.Errorf("toggle todo %q: %w", id, err)
	}
	s.logger.Debug("todo toggled", "id", toggled.ID, "completed", toggled.Completed)
	return toggled, nil
}

// DeleteTodo はTodoを削除します。
func (s *TodoService) DeleteTodo(id string) error {
	if err := s.store.Delete(id); err != nil {
		return fmt.Errorf("delete todo %q: %w", id, err)
	}
	s.logger.Debug("todo deleted", "id", id)
	return nil
}

func (s *TodoService) checkTitle(title string) error {
	if !s.policy.Validate {
		return nil
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title must not be blank", ErrInvalidTitle)
	}
	if !utf8.ValidString(title) {
		return fmt.Errorf("%w: title must be valid UTF-8", ErrInvalidTitle)
	}
	if s.policy.MaxLength > 0 && utf8.RuneCountInString(title) > s.policy.MaxLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidTitle, s.policy.MaxLength)
	}
	return nil
}
