package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"todoapi/internal/adapter/database/postgres"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

type TodoRepository struct {
	db *postgres.DB
}

func NewTodoRepository(db *postgres.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

func (tr *TodoRepository) Save(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query, args, err := tr.db.QueryBuilder.Insert("todos").
		Columns("id", "user_id", "title", "description", "completed", "created_at", "completed_at").
		Values(todo.ID, todo.UserID, todo.Title, todo.Description, todo.Completed, todo.CreatedAt, todo.CompletedAt).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	if _, err := tr.db.Exec(ctx, query, args...); err != nil {
		return domain.Todo{}, err
	}

	return tr.GetByID(ctx, todo.ID)
}

func (tr *TodoRepository) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	query, args, err := tr.selectTodos().
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	var todo domain.Todo

	row := tr.db.QueryRow(ctx, query, args...)
	err = scanTodo(row, &todo)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

	tag, err := tr.db.Exec(ctx, query, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	if tag.RowsAffected() == 0 {
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

	tag, err := tr.db.Exec(ctx, query, args...)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NotFound("todo not found")
	}

	return nil
}

func (tr *TodoRepository) getMany(ctx context.Context, where sq.Eq) ([]domain.Todo, error) {
	query, args, err := tr.selectTodos().
		Where(where).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.Query(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	todos := make([]domain.Todo, 0)

	for rows.Next() {
		var todo domain.Todo

		if err := scanTodo(rows, &todo); err != nil {
			return nil, err
		}

		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (tr *TodoRepository) selectTodos() sq.SelectBuilder {
	return tr.db.QueryBuilder.
		Select("id", "user_id", "title", "description", "completed", "created_at", "completed_at").
		From("todos")
}

func scanTodo(row pgx.Row, todo *domain.Todo) error {
	return row.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Description, &todo.Completed, &todo.CreatedAt, &todo.CompletedAt)
}
