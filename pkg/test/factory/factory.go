package factory

import (
	fab "github.com/Goldziher/fabricator"
	"golang.org/x/crypto/bcrypt"
)

func NewUser[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	hasPasswordHash := false

	for _, data := range customData {
		if _, exists := data["PasswordHash"]; exists {
			hasPasswordHash = true
			break
		}
	}

	if !hasPasswordHash {
		hash, _ := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)

		customData = append(customData, map[string]any{
			"PasswordHash": string(hash),
		})
	}

	return instance.Build(customData...)
}

func NewTodo[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	if len(customData) > 0 {
		return instance.Build(customData...)
	}

	return instance.Build()
}
