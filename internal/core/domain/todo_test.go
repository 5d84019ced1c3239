package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTodo_MarkComplete(t *testing.T) {
	t.Run("should complete a pending todo", func(t *testing.T) {
		todo := Todo{Title: "Buy milk"}

		err := todo.MarkComplete()

		assert.NoError(t, err)
		assert.True(t, todo.Completed)
		assert.NotNil(t, todo.CompletedAt)
	})

	t.Run("should fail on a completed todo", func(t *testing.T) {
		todo := Todo{Title: "Buy milk"}

		assert.NoError(t, todo.MarkComplete())

		firstCompletedAt := todo.CompletedAt

		err := todo.MarkComplete()

		assert.Error(t, err)
		assert.Equal(t, KindConflict, KindOf(err))
		assert.Equal(t, firstCompletedAt, todo.CompletedAt)
	})
}

func TestTodo_UpdateTitle(t *testing.T) {
	t.Run("should update the title while pending", func(t *testing.T) {
		todo := Todo{Title: "Buy milk"}

		err := todo.UpdateTitle("Buy oat milk")

		assert.NoError(t, err)
		assert.Equal(t, "Buy oat milk", todo.Title)
	})

	t.Run("should reject an empty title", func(t *testing.T) {
		todo := Todo{Title: "Buy milk"}

		err := todo.UpdateTitle("  ")

		assert.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Equal(t, "Buy milk", todo.Title)
	})

	t.Run("should reject any title change once completed", func(t *testing.T) {
		todo := Todo{Title: "Buy milk"}

		assert.NoError(t, todo.MarkComplete())

		err := todo.UpdateTitle("Perfectly valid title")

		assert.Error(t, err)
		assert.Equal(t, KindConflict, KindOf(err))
		assert.Equal(t, "Buy milk", todo.Title)
	})
}

func TestTodo_BelongsToUser(t *testing.T) {
	todo := Todo{UserID: "user-1"}

	assert.True(t, todo.BelongsToUser("user-1"))
	assert.False(t, todo.BelongsToUser("user-2"))
}
