package domain

import (
	"strings"
	"time"
)

type Todo struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	Title       string     `db:"title" validate:"required,max=255"`
	Description string     `db:"description" validate:"max=1000"`
	Completed   bool       `db:"completed"`
	CreatedAt   time.Time  `db:"created_at"`
	CompletedAt *time.Time `db:"completed_at"`
}

func (t *Todo) BelongsToUser(userID string) bool {
	return t.UserID == userID
}

// MarkComplete moves the todo to its terminal state. CompletedAt is set
// exactly once and never cleared.
func (t *Todo) MarkComplete() error {
	if t.Completed {
		return Conflict("todo is already completed")
	}

	now := time.Now().UTC()
	t.Completed = true
	t.CompletedAt = &now

	return nil
}

// UpdateTitle is only allowed while the todo is pending.
func (t *Todo) UpdateTitle(title string) error {
	if t.Completed {
		return Conflict("cannot update title of a completed todo")
	}

	if strings.TrimSpace(title) == "" {
		return Validation("title cannot be empty")
	}

	t.Title = title

	return nil
}
