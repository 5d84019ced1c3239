package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"todoapi/internal/adapter/database/postgres"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	db *postgres.DB
}

func NewUserRepository(db *postgres.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (ur *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	query, args, err := ur.db.QueryBuilder.Insert("users").
		Columns("id", "username", "email", "password_hash", "is_active", "created_at", "updated_at").
		Values(user.ID, user.Username, user.Email, user.PasswordHash, user.IsActive, user.CreatedAt, user.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	if _, err := ur.db.Exec(ctx, query, args...); err != nil {
		return domain.User{}, normalizeConstraintError(err, "email or username already taken")
	}

	return ur.GetByID(ctx, user.ID)
}

func (ur *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return ur.getOne(ctx, sq.Eq{"id": id})
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return ur.getOne(ctx, sq.Eq{"email": email})
}

func (ur *UserRepository) Delete(ctx context.Context, id string) error {
	query, args, err := ur.db.QueryBuilder.Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	tag, err := ur.db.Exec(ctx, query, args...)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NotFound("user not found")
	}

	return nil
}

func (ur *UserRepository) getOne(ctx context.Context, where sq.Eq) (domain.User, error) {
	query, args, err := ur.db.QueryBuilder.
		Select("id", "username", "email", "password_hash", "is_active", "created_at", "updated_at").
		From("users").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var user domain.User

	row := ur.db.QueryRow(ctx, query, args...)
	err = row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NotFound("user not found")
		}

		return domain.User{}, err
	}

	return user, nil
}

func normalizeConstraintError(err error, message string) error {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return domain.Conflict(message)
	}

	return err
}
