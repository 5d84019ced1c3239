package domain

import "errors"

// Kind classifies a domain failure so the delivery layer can map it to
// a transport status without inspecting message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindForbidden
	KindUnauthorized
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// KindOf returns the kind carried by err, or KindUnknown when err does
// not originate from the domain.
func KindOf(err error) Kind {
	var domainErr *Error

	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}

	return KindUnknown
}
