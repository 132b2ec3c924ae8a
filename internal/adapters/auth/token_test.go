package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sign builds a token the way the upstream issuer does.
func sign(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func claimsFor(subject string, expiry time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}
}

func TestJWT_Verify(t *testing.T) {
	const secret = "test-secret"
	j := NewJWT(secret)

	tests := []struct {
		name    string
		token   string
		want    int64
		wantErr bool
	}{
		{name: "valid", token: sign(t, secret, jwt.SigningMethodHS256, claimsFor("42", time.Hour)), want: 42},
		{name: "expired", token: sign(t, secret, jwt.SigningMethodHS256, claimsFor("42", -time.Minute)), wantErr: true},
		{name: "no expiry", token: sign(t, secret, jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "42"}), wantErr: true},
		{name: "wrong secret", token: sign(t, "other-secret", jwt.SigningMethodHS256, claimsFor("42", time.Hour)), wantErr: true},
		{name: "other hmac method", token: sign(t, secret, jwt.SigningMethodHS512, claimsFor("42", time.Hour)), wantErr: true},
		{name: "non numeric subject", token: sign(t, secret, jwt.SigningMethodHS256, claimsFor("alice", time.Hour)), wantErr: true},
		{name: "zero subject", token: sign(t, secret, jwt.SigningMethodHS256, claimsFor("0", time.Hour)), wantErr: true},
		{name: "garbage", token: "not-a-token", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := j.Verify(tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
