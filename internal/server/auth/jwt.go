// Package auth holds the two cryptographic primitives of the server: the
// signed-token codec (JWT, HS256) and the password hasher (bcrypt).
package auth

import (
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the token claims structure: the registered claims (subject,
// issued-at, expiry) plus the access scope the token was issued under.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// GenerateToken issues a signed token naming userID as subject under the
// given scope, valid for validityDuration from now. The random jti keeps two
// tokens issued within the same second distinct, so each one can be revoked
// on its own.
func GenerateToken(userID, scope string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Scope: scope,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString against secretKey and returns the subject
// user id and scope. A bad signature, a structurally malformed token, a
// non-HMAC signing method, and an expired token all yield the same
// common.ErrInvalidToken, so the caller cannot be used as an oracle.
func ParseToken(tokenString string, secretKey []byte) (userID string, scope string, err error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.Subject, claims.Scope, nil
}
