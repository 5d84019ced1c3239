package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// JWT issues and verifies HMAC-signed bearer tokens. Verification is
// stateless; a token stays valid for its full lifetime once issued.
type JWT struct {
	secret   []byte
	method   jwt.SigningMethod
	lifetime time.Duration
}

func New(secret, algorithm string, lifetimeMinutes int) (*JWT, error) {
	method, ok := signingMethods[algorithm]

	if !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm: %s", algorithm)
	}

	return &JWT{
		secret:   []byte(secret),
		method:   method,
		lifetime: time.Duration(lifetimeMinutes) * time.Minute,
	}, nil
}

func (j *JWT) Issue(userID, email string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(j.lifetime).Unix(),
	}

	return jwt.NewWithClaims(j.method, claims).SignedString(j.secret)
}

// Verify collapses every structural, signature, or expiry failure into
// a single unauthorized error so callers never see raw parser errors.
func (j *JWT) Verify(tokenString string) (port.Identity, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{j.method.Alg()}))

	if err != nil || !parsed.Valid {
		return port.Identity{}, domain.Unauthorized("invalid or expired token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)

	if !ok {
		return port.Identity{}, domain.Unauthorized("invalid or expired token")
	}

	sub, _ := claims["sub"].(string)

	if sub == "" {
		return port.Identity{}, domain.Unauthorized("invalid or expired token")
	}

	email, _ := claims["email"].(string)

	return port.Identity{UserID: sub, Email: email}, nil
}
