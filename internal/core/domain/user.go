package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string     `db:"id"`
	Username     string     `db:"username" validate:"required,max=100"`
	Email        string     `db:"email" validate:"required,email,max=255"`
	PasswordHash string     `db:"password_hash" validate:"required"`
	IsActive     bool       `db:"is_active"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

func (u *User) UpdateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return Validation("email cannot be empty")
	}

	u.Email = email
	u.touch()

	return nil
}

func (u *User) UpdateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return Validation("username cannot be empty")
	}

	u.Username = username
	u.touch()

	return nil
}

// Deactivate is terminal. There is no reactivation operation.
func (u *User) Deactivate() error {
	if !u.IsActive {
		return Conflict("user is already deactivated")
	}

	u.IsActive = false
	u.touch()

	return nil
}

func (u *User) touch() {
	now := time.Now().UTC()
	u.UpdatedAt = &now
}
