package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/pkg/test"
)

type TodoServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	db    *sqlite.DB
	users port.UserRepository
	todos port.TodoRepository
	svc   *service.TodoService
	alice domain.User
	bob   domain.User
}

func (s *TodoServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = test.InitTestDB()
	s.users = repository.NewUserRepository(s.db)
	s.todos = repository.NewTodoRepository(s.db)
	s.svc = service.NewTodoService(s.todos, s.users)

	s.alice = s.createUser("alice", "alice@example.com")
	s.bob = s.createUser("bob", "bob@example.com")
}

func (s *TodoServiceTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *TodoServiceTestSuite) createUser(username, email string) domain.User {
	user, err := s.users.Save(s.ctx, domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	})

	s.Require().NoError(err)

	return user
}

func (s *TodoServiceTestSuite) createTodo(ownerID, title string) *domain.Todo {
	todo, err := s.svc.Create(s.ctx, ownerID, &request.CreateTodoRequest{Title: title})

	s.Require().NoError(err)

	return todo
}

func (s *TodoServiceTestSuite) TestCreateAndGet() {
	created := s.createTodo(s.alice.ID, "Buy milk")

	assert.NotEmpty(s.T(), created.ID)
	assert.Equal(s.T(), s.alice.ID, created.UserID)
	assert.Equal(s.T(), "Buy milk", created.Title)
	assert.False(s.T(), created.Completed)
	assert.Nil(s.T(), created.CompletedAt)

	fetched, err := s.svc.Get(s.ctx, created.ID, s.alice.ID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, fetched.ID)
	assert.Equal(s.T(), created.Title, fetched.Title)
}

func (s *TodoServiceTestSuite) TestCreateForUnknownOwner() {
	_, err := s.svc.Create(s.ctx, "missing-user", &request.CreateTodoRequest{Title: "Buy milk"})

	assert.Error(s.T(), err)
	assert.Equal(s.T(), domain.KindNotFound, domain.KindOf(err))
}

func (s *TodoServiceTestSuite) TestListForUserFilters() {
	first := s.createTodo(s.alice.ID, "First")
	s.createTodo(s.alice.ID, "Second")
	s.createTodo(s.bob.ID, "Bob's own")

	_, err := s.svc.Complete(s.ctx, first.ID, s.alice.ID)
	s.Require().NoError(err)

	all, err := s.svc.ListForUser(s.ctx, s.alice.ID, "")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), all, 2)

	completed, err := s.svc.ListForUser(s.ctx, s.alice.ID, service.FilterCompleted)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), completed, 1)
	assert.Equal(s.T(), first.ID, completed[0].ID)

	pending, err := s.svc.ListForUser(s.ctx, s.alice.ID, service.FilterPending)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), pending, 1)
	assert.Equal(s.T(), "Second", pending[0].Title)
}

func (s *TodoServiceTestSuite) TestOwnershipIsolation() {
	todo := s.createTodo(s.alice.ID, "Private")

	_, err := s.svc.Get(s.ctx, todo.ID, s.bob.ID)
	assert.Equal(s.T(), domain.KindForbidden, domain.KindOf(err))

	_, err = s.svc.Update(s.ctx, todo.ID, s.bob.ID, &request.UpdateTodoRequest{Title: "Hijacked"})
	assert.Equal(s.T(), domain.KindForbidden, domain.KindOf(err))

	_, err = s.svc.Complete(s.ctx, todo.ID, s.bob.ID)
	assert.Equal(s.T(), domain.KindForbidden, domain.KindOf(err))

	err = s.svc.Delete(s.ctx, todo.ID, s.bob.ID)
	assert.Equal(s.T(), domain.KindForbidden, domain.KindOf(err))

	fetched, err := s.svc.Get(s.ctx, todo.ID, s.alice.ID)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Private", fetched.Title)
}

func (s *TodoServiceTestSuite) TestUpdate() {
	todo := s.createTodo(s.alice.ID, "Buy milk")

	description := "two liters"

	updated, err := s.svc.Update(s.ctx, todo.ID, s.alice.ID, &request.UpdateTodoRequest{
		Title:       "Buy oat milk",
		Description: &description,
	})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Buy oat milk", updated.Title)
	assert.Equal(s.T(), "two liters", updated.Description)
}

func (s *TodoServiceTestSuite) TestUpdateEmptyTitleLeavesTitleUnchanged() {
	todo := s.createTodo(s.alice.ID, "Buy milk")

	description := "two liters"

	updated, err := s.svc.Update(s.ctx, todo.ID, s.alice.ID, &request.UpdateTodoRequest{
		Title:       "",
		Description: &description,
	})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Buy milk", updated.Title)
	assert.Equal(s.T(), "two liters", updated.Description)
}

func (s *TodoServiceTestSuite) TestUpdateCanClearDescription() {
	todo := s.createTodo(s.alice.ID, "Buy milk")

	description := "two liters"

	_, err := s.svc.Update(s.ctx, todo.ID, s.alice.ID, &request.UpdateTodoRequest{Description: &description})
	s.Require().NoError(err)

	empty := ""

	updated, err := s.svc.Update(s.ctx, todo.ID, s.alice.ID, &request.UpdateTodoRequest{Description: &empty})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "", updated.Description)
}

func (s *TodoServiceTestSuite) TestUpdateTitleOnCompletedTodo() {
	todo := s.createTodo(s.alice.ID, "Buy milk")

	_, err := s.svc.Complete(s.ctx, todo.ID, s.alice.ID)
	s.Require().NoError(err)

	_, err = s.svc.Update(s.ctx, todo.ID, s.alice.ID, &request.UpdateTodoRequest{Title: "Too late"})

	assert.Error(s.T(), err)
	assert.Equal(s.T(), domain.KindConflict, domain.KindOf(err))
}

func (s *TodoServiceTestSuite) TestComplete() {
	todo := s.createTodo(s.alice.ID, "Buy milk")

	completed, err := s.svc.Complete(s.ctx, todo.ID, s.alice.ID)

	assert.NoError(s.T(), err)
	assert.True(s.T(), completed.Completed)
	assert.NotNil(s.T(), completed.CompletedAt)
}

func (s *TodoServiceTestSuite) TestCompleteTwice() {
	todo := s.createTodo(s.alice.ID, "Buy milk")

	_, err := s.svc.Complete(s.ctx, todo.ID, s.alice.ID)
	s.Require().NoError(err)

	_, err = s.svc.Complete(s.ctx, todo.ID, s.alice.ID)

	assert.Error(s.T(), err)
	assert.Equal(s.T(), domain.KindConflict, domain.KindOf(err))
}

func (s *TodoServiceTestSuite) TestDelete() {
	todo := s.createTodo(s.alice.ID, "Buy milk")

	err := s.svc.Delete(s.ctx, todo.ID, s.alice.ID)
	assert.NoError(s.T(), err)

	_, err = s.svc.Get(s.ctx, todo.ID, s.alice.ID)
	assert.Equal(s.T(), domain.KindNotFound, domain.KindOf(err))
}

func (s *TodoServiceTestSuite) TestGetUnknownTodo() {
	_, err := s.svc.Get(s.ctx, "missing-id", s.alice.ID)

	assert.Error(s.T(), err)
	assert.Equal(s.T(), domain.KindNotFound, domain.KindOf(err))
}

func TestTodoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TodoServiceTestSuite))
}
