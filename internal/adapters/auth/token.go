package auth

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for malformed, expired or wrongly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// JWT verifies HS256 bearer tokens whose subject is the numeric user ID.
// Tokens are issued upstream by the service that owns user accounts.
type JWT struct {
	secret []byte
}

// NewJWT returns a verifier for the given shared secret.
func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

// Verify parses tokenString and returns the user ID from its subject.
// An expiry claim is required.
func (j *JWT) Verify(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID < 1 {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
