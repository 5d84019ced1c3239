package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
)

type AccountService struct {
	repo   port.UserRepository
	tokens port.TokenService
}

func NewAccountService(repo port.UserRepository, tokens port.TokenService) *AccountService {
	return &AccountService{repo: repo, tokens: tokens}
}

func (as *AccountService) Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error) {
	existing, err := as.repo.GetByEmail(ctx, req.Email)

	if err == nil && existing.Email != "" {
		return nil, domain.Conflict("user already exists")
	}

	hash, err := util.HashPassword(req.Password)

	if err != nil {
		slog.Error("Account#Register", "hash_password", err)
		return nil, err
	}

	user := domain.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	saved, err := as.repo.Save(ctx, user)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Login collapses unknown email and wrong password into the same
// message so callers cannot probe which field was wrong.
func (as *AccountService) Login(ctx context.Context, req *request.LoginRequest) (*domain.User, string, error) {
	user, err := as.repo.GetByEmail(ctx, req.Email)

	if err != nil {
		slog.Error("Account#Login", "get_by_email", err)
		return nil, "", domain.Unauthorized("invalid email or password")
	}

	if err := util.ComparePassword(req.Password, user.PasswordHash); err != nil {
		slog.Error("Account#Login", "compare_password", err)
		return nil, "", domain.Unauthorized("invalid email or password")
	}

	if !user.IsActive {
		return nil, "", domain.Unauthorized("account deactivated")
	}

	token, err := as.tokens.Issue(user.ID, user.Email)

	if err != nil {
		slog.Error("Account#Login", "issue_token", err)
		return nil, "", err
	}

	return &user, token, nil
}

func (as *AccountService) GetAccount(ctx context.Context, id string) (*domain.User, error) {
	user, err := as.repo.GetByID(ctx, id)

	if err != nil {
		return nil, domain.NotFound("user not found")
	}

	return &user, nil
}
