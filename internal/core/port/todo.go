package port

import (
	"context"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
)

type TodoRepository interface {
	Save(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	GetByID(ctx context.Context, id string) (domain.Todo, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Todo, error)
	Update(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Delete(ctx context.Context, id string) error
	GetCompleted(ctx context.Context, userID string) ([]domain.Todo, error)
	GetPending(ctx context.Context, userID string) ([]domain.Todo, error)
}

type TodoService interface {
	Create(ctx context.Context, ownerID string, req *request.CreateTodoRequest) (*domain.Todo, error)
	ListForUser(ctx context.Context, userID string, filter string) ([]domain.Todo, error)
	Get(ctx context.Context, todoID, callerID string) (*domain.Todo, error)
	Update(ctx context.Context, todoID, callerID string, req *request.UpdateTodoRequest) (*domain.Todo, error)
	Complete(ctx context.Context, todoID, callerID string) (*domain.Todo, error)
	Delete(ctx context.Context, todoID, callerID string) error
}
