package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

type TodoRepository struct {
	db      *sqlite.DB
	scanner *sqlite.Scanner
}

func NewTodoRepository(db *sqlite.DB) port.TodoRepository {
	return &TodoRepository{
		db:      db,
		scanner: sqlite.NewScanner(),
	}
}

func (tr *TodoRepository) Save(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query, args, err := tr.db.QueryBuilder.Insert("todos").
		Columns("id", "user_id", "title", "description", "completed", "created_at", "completed_at").
		Values(todo.ID, todo.UserID, todo.Title, todo.Description, todo.Completed, todo.CreatedAt, todo.CompletedAt).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	if _, err := tr.db.ExecContext(ctx, query, args...); err != nil {
		slog.Error("Error creating todo", "error", err, "id", todo.ID)
		return domain.Todo{}, err
	}

	return tr.GetByID(ctx, todo.ID)
}

func (tr *TodoRepository) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	query, args, err := tr.db.QueryBuilder.Select("*").
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	rows, err := tr.db.QueryContext(ctx, query, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	defer rows.Close()

	var todo domain.Todo

	if err := tr.scanner.ScanRowToStruct(rows, &todo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Todo{}, domain.NotFound("todo not found")
		}

		return domain.Todo{}, err
	}

	return todo, nil
}

func (tr *TodoRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Todo, error) {
	return tr.getMany(ctx, sq.Eq{"user_id": userID})
}

func (tr *TodoRepository) GetCompleted(ctx context.Context, userID string) ([]domain.Todo, error) {
	return tr.getMany(ctx, sq.Eq{"user_id": userID, "completed": true})
}

func (tr *TodoRepository) GetPending(ctx context.Context, userID string) ([]domain.Todo, error) {
	return tr.getMany(ctx, sq.Eq{"user_id": userID, "completed": false})
}

func (tr *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query, args, err := tr.db.QueryBuilder.Update("todos").
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("completed", todo.Completed).
		Set("completed_at", todo.CompletedAt).
		Where(sq.Eq{"id": todo.ID}).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := tr.db.ExecContext(ctx, query, args...)

	if err != nil {
		slog.Error("Error updating todo", "error", err, "id", todo.ID)
		return domain.Todo{}, err
	}

	rowsAffected, _ := result.RowsAffected()

	if rowsAffected == 0 {
		return domain.Todo{}, domain.NotFound("todo not found")
	}

	return tr.GetByID(ctx, todo.ID)
}

func (tr *TodoRepository) Delete(ctx context.Context, id string) error {
	query, args, err := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.ExecContext(ctx, query, args...)

	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()

	if rowsAffected == 0 {
		return domain.NotFound("todo not found")
	}

	return nil
}

func (tr *TodoRepository) getMany(ctx context.Context, where sq.Eq) ([]domain.Todo, error) {
	query, args, err := tr.db.QueryBuilder.Select("*").
		From("todos").
		Where(where).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	todos := make([]domain.Todo, 0)

	if err := tr.scanner.ScanRowsToSlice(rows, &todos); err != nil {
		return nil, err
	}

	return todos, nil
}
