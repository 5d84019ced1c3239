package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	sqlite3driver "github.com/mattn/go-sqlite3"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

type UserRepository struct {
	db      *sqlite.DB
	scanner *sqlite.Scanner
}

func NewUserRepository(db *sqlite.DB) port.UserRepository {
	return &UserRepository{
		db:      db,
		scanner: sqlite.NewScanner(),
	}
}

func (ur *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	query, args, err := ur.db.QueryBuilder.Insert("users").
		Columns("id", "username", "email", "password_hash", "is_active", "created_at", "updated_at").
		Values(user.ID, user.Username, user.Email, user.PasswordHash, user.IsActive, user.CreatedAt, user.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	if _, err := ur.db.ExecContext(ctx, query, args...); err != nil {
		slog.Error("Error creating user", "error", err)
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

	result, err := ur.db.ExecContext(ctx, query, args...)

	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()

	if rowsAffected == 0 {
		return domain.NotFound("user not found")
	}

	return nil
}

func (ur *UserRepository) getOne(ctx context.Context, where sq.Eq) (domain.User, error) {
	query, args, err := ur.db.QueryBuilder.Select("*").
		From("users").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	rows, err := ur.db.QueryContext(ctx, query, args...)

	if err != nil {
		return domain.User{}, err
	}

	defer rows.Close()

	var user domain.User

	if err := ur.scanner.ScanRowToStruct(rows, &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.NotFound("user not found")
		}

		return domain.User{}, err
	}

	return user, nil
}

// normalizeConstraintError keeps raw driver errors out of the core:
// unique violations surface as conflicts, everything else passes
// through.
func normalizeConstraintError(err error, message string) error {
	var sqliteErr sqlite3driver.Error

	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3driver.ErrConstraintUnique {
		return domain.Conflict(message)
	}

	return err
}
