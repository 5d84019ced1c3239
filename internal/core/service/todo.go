package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
)

const (
	FilterCompleted = "completed"
	FilterPending   = "pending"
)

type TodoService struct {
	repo  port.TodoRepository
	users port.UserRepository
}

func NewTodoService(repo port.TodoRepository, users port.UserRepository) *TodoService {
	return &TodoService{repo: repo, users: users}
}

func (ts *TodoService) Create(ctx context.Context, ownerID string, req *request.CreateTodoRequest) (*domain.Todo, error) {
	if _, err := ts.users.GetByID(ctx, ownerID); err != nil {
		return nil, domain.NotFound("user not found")
	}

	todo := domain.Todo{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}

	saved, err := ts.repo.Save(ctx, todo)

	if err != nil {
		slog.Error("Todo#Create", "save", err, "title", todo.Title)
		return nil, err
	}

	return &saved, nil
}

func (ts *TodoService) ListForUser(ctx context.Context, userID string, filter string) ([]domain.Todo, error) {
	if _, err := ts.users.GetByID(ctx, userID); err != nil {
		return nil, domain.NotFound("user not found")
	}

	switch filter {
	case FilterCompleted:
		return ts.repo.GetCompleted(ctx, userID)
	case FilterPending:
		return ts.repo.GetPending(ctx, userID)
	default:
		return ts.repo.GetByUserID(ctx, userID)
	}
}

func (ts *TodoService) Get(ctx context.Context, todoID, callerID string) (*domain.Todo, error) {
	return ts.getOwned(ctx, todoID, callerID)
}

func (ts *TodoService) Update(ctx context.Context, todoID, callerID string, req *request.UpdateTodoRequest) (*domain.Todo, error) {
	todo, err := ts.getOwned(ctx, todoID, callerID)

	if err != nil {
		return nil, err
	}

	// An empty title means "no change"; see UpdateTodoRequest.
	if req.Title != "" {
		if err := todo.UpdateTitle(req.Title); err != nil {
			return nil, err
		}
	}

	if req.Description != nil {
		todo.Description = *req.Description
	}

	updated, err := ts.repo.Update(ctx, *todo)

	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (ts *TodoService) Complete(ctx context.Context, todoID, callerID string) (*domain.Todo, error) {
	todo, err := ts.getOwned(ctx, todoID, callerID)

	if err != nil {
		return nil, err
	}

	if err := todo.MarkComplete(); err != nil {
		return nil, err
	}

	updated, err := ts.repo.Update(ctx, *todo)

	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (ts *TodoService) Delete(ctx context.Context, todoID, callerID string) error {
	if _, err := ts.getOwned(ctx, todoID, callerID); err != nil {
		return err
	}

	return ts.repo.Delete(ctx, todoID)
}

func (ts *TodoService) getOwned(ctx context.Context, todoID, callerID string) (*domain.Todo, error) {
	todo, err := ts.repo.GetByID(ctx, todoID)

	if err != nil {
		return nil, domain.NotFound("todo not found")
	}

	if !todo.BelongsToUser(callerID) {
		return nil, domain.Forbidden("not your todo")
	}

	return &todo, nil
}
