// Package auth implements the credential core: one-way password hashing and
// the signed, expiring access tokens that carry a user's subject claim.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/voclara/voclara/internal/common"
)

// Claims is the token payload: registered claims only, with the subject set
// to the user's email. Expiry is embedded in the signed payload so that
// verification needs no server-side state.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token asserting subject until now+validity.
// A non-positive validity yields a token that is already expired; callers
// use that to mint test tokens, it is not rejected here.
func GenerateToken(subject string, secretKey []byte, validity time.Duration) (string, error) {
	if subject == "" {
		return "", common.ErrInvalidClaim
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken parses and verifies tokenString and returns its subject
// claim. Failure kinds stay distinguishable for logging:
//
//	common.ErrTokenExpired:     signature fine, expiry in the past
//	common.ErrSignatureInvalid: tampering or secret mismatch
//	common.ErrTokenMalformed:   unparseable, wrong algorithm, or missing subject
//
// The HTTP gate collapses all three into one generic rejection before they
// reach a client.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrSignatureInvalid
		default:
			return "", common.ErrTokenMalformed
		}
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrTokenMalformed
	}

	return claims.Subject, nil
}
