package todo_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-inmem-todo/backend/internal/models"
	"go-inmem-todo/backend/internal/todo"
)

func TestStore_ListEmpty(t *testing.T) {
	s := todo.NewStore()

	todos := s.List()
	require.NotNil(t, todos)
	assert.Len(t, todos, 0)
}

func TestStore_CreateAppendsUncompletedItem(t *testing.T) {
	s := todo.NewStore()

	first := s.Create("a")
	second := s.Create("b")

	todos := s.List()
	require.Len(t, todos, 2)
	assert.Equal(t, first, todos[0])
	assert.Equal(t, second, todos[1])

	for _, td := range todos {
		assert.False(t, td.Completed)
		id, err := uuid.Parse(td.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
		assert.Equal(t, id.String(), td.ID, "id should be in canonical hyphenated form")
	}
}

func TestStore_CreateKeepsTitleVerbatim(t *testing.T) {
	s := todo.NewStore()

	for _, title := range []string{"", "  padded  ", "日本語のタイトル", string(make([]byte, 4096))} {
		created := s.Create(title)
		assert.Equal(t, title, created.Title)
	}
}

func TestStore_CreateUniqueIDs(t *testing.T) {
	s := todo.NewStore()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		created := s.Create(fmt.Sprintf("todo %d", i))
		_, dup := seen[created.ID]
		require.False(t, dup, "duplicate id %s", created.ID)
		seen[created.ID] = struct{}{}
	}
}

func TestStore_Toggle(t *testing.T) {
	s := todo.NewStore()
	created := s.Create("x")

	toggled, err := s.Toggle(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.Equal(t, created.ID, toggled.ID)
	assert.Equal(t, created.Title, toggled.Title)

	toggled, err = s.Toggle(created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	assert.Equal(t, []string{created.ID}, ids(s.List()))
}

func TestStore_ToggleDoesNotReorder(t *testing.T) {
	s := todo.NewStore()
	a := s.Create("a")
	b := s.Create("b")
	c := s.Create("c")

	_, err := s.Toggle(b.ID)
	require.NoError(t, err)

	todos := s.List()
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids(todos))
	assert.True(t, todos[1].Completed)
}

func TestStore_DeletePreservesOrder(t *testing.T) {
	s := todo.NewStore()
	a := s.Create("a")
	b := s.Create("b")
	c := s.Create("c")

	require.NoError(t, s.Delete(b.ID))

	assert.Equal(t, []string{a.ID, c.ID}, ids(s.List()))
	assert.Equal(t, 2, s.Len())
}

func TestStore_UnknownIDLeavesStoreUnchanged(t *testing.T) {
	s := todo.NewStore()
	a := s.Create("a")
	before := s.List()

	_, err := s.Toggle("deadbeef-dead-beef-dead-beefdeadbeef")
	assert.ErrorIs(t, err, todo.ErrTodoNotFound)

	err = s.Delete("deadbeef-dead-beef-dead-beefdeadbeef")
	assert.ErrorIs(t, err, todo.ErrTodoNotFound)

	assert.Equal(t, before, s.List())

	require.NoError(t, s.Delete(a.ID))
	_, err = s.Toggle(a.ID)
	assert.ErrorIs(t, err, todo.ErrTodoNotFound, "toggle after delete must miss")
}

func TestStore_ListReturnsSnapshot(t *testing.T) {
	s := todo.NewStore()
	created := s.Create("x")

	snapshot := s.List()
	snapshot[0].Title = "changed"
	snapshot[0].Completed = true

	todos := s.List()
	assert.Equal(t, created, todos[0])
}

func TestStore_NewStoreWithIDFunc(t *testing.T) {
	n := 0
	s := todo.NewStoreWithIDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})

	assert.Equal(t, "id-1", s.Create("a").ID)
	assert.Equal(t, "id-2", s.Create("b").ID)
}

func TestStore_ConcurrentDisjointOperations(t *testing.T) {
	s := todo.NewStore()

	// seed items that will be toggled or deleted concurrently
	const seeded = 50
	toToggle := make([]string, 0, seeded)
	toDelete := make([]string, 0, seeded)
	for i := 0; i < seeded; i++ {
		toToggle = append(toToggle, s.Create(fmt.Sprintf("toggle %d", i)).ID)
		toDelete = append(toDelete, s.Create(fmt.Sprintf("delete %d", i)).ID)
	}

	const created = 100
	var wg sync.WaitGroup
	createdIDs := make(chan string, created)

	for i := 0; i < created; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			createdIDs <- s.Create(fmt.Sprintf("new %d", i)).ID
		}(i)
	}
	for _, id := range toToggle {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := s.Toggle(id)
			assert.NoError(t, err)
		}(id)
	}
	for _, id := range toDelete {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			assert.NoError(t, s.Delete(id))
		}(id)
	}
	wg.Wait()
	close(createdIDs)

	todos := s.List()
	require.Len(t, todos, seeded+created)

	byID := make(map[string]bool, len(todos))
	for _, td := range todos {
		byID[td.ID] = td.Completed
	}
	for _, id := range toToggle {
		completed, ok := byID[id]
		require.True(t, ok)
		assert.True(t, completed)
	}
	for _, id := range toDelete {
		_, ok := byID[id]
		assert.False(t, ok)
	}
	for id := range createdIDs {
		completed, ok := byID[id]
		require.True(t, ok)
		assert.False(t, completed)
	}

	// toggled items keep their relative order
	var toggledOrder []string
	for _, td := range todos {
		if td.Completed {
			toggledOrder = append(toggledOrder, td.ID)
		}
	}
	assert.Equal(t, toToggle, toggledOrder)
}

func ids(todos []models.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, td := range todos {
		out = append(out, td.ID)
	}
	return out
}
