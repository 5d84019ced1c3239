package request

type SignUpRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateTodoRequest keeps the source semantics: an empty title means
// "leave the title alone", while Description is applied whenever the
// field is present, including an explicit empty string.
type UpdateTodoRequest struct {
	Title       string  `json:"title" validate:"max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}
