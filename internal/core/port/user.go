package port

import (
	"context"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
)

type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Delete(ctx context.Context, id string) error
}

type AccountService interface {
	Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (*domain.User, string, error)
	GetAccount(ctx context.Context, id string) (*domain.User, error)
}
