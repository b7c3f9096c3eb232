// Package todo はメモリ上のTodoリストを管理します。
package todo

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"go-inmem-todo/backend/internal/models"
)

// ErrTodoNotFound はIDに一致するTodoが存在しない場合のエラーです。
var ErrTodoNotFound = errors.New("todo not found")

// Store は挿入順に並んだTodoのリストです。
// すべてのメソッドは処理の間ずっと mu を保持します。
type Store struct {
	mu     sync.Mutex
	todos  []models.Todo
	nextID func() string
}

// NewStore はUUIDv4でIDを採番する空のStoreを作成します。
func NewStore() *Store {
	return NewStoreWithIDFunc(uuid.NewString)
}

// NewStoreWithIDFunc は nextID でIDを採番する空のStoreを作成します。
func NewStoreWithIDFunc(nextID func() string) *Store {
	return &Store{
		todos:  make([]models.Todo, 0),
		nextID: nextID,
	}
}

// List はすべてのTodoのコピーを挿入順で返します。
func (s *Store) List() []models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Create は未完了のTodoを末尾に追加し、作成したTodoを返します。
func (s *Store) Create(title string) models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Todo{
		ID:        s.nextID(),
		Title:     title,
		Completed: false,
	}
	s.todos = append(s.todos, t)
	return t
}

// Toggle は指定IDのTodoの完了状態を反転します。
func (s *Store) Toggle(id string) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Todo{}, ErrTodoNotFound
	}
	s.todos[i].Completed = !s.todos[i].Completed
	return s.todos[i], nil
}

// Delete は指定IDのTodoを削除します。残りの順序は維持されます。
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrTodoNotFound
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	return nil
}

// Len はTodoの件数を返します。
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.todos)
}

// indexOf は mu を保持した状態で呼び出す必要があります。
func (s *Store) indexOf(id string) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}
