package port

// Identity is the verified content of a bearer token.
type Identity struct {
	UserID string
	Email  string
}

type TokenService interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (Identity, error)
}
