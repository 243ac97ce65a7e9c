package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bloodlink/domain"
	apperrors "bloodlink/errors"
)

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies bearer credentials. The signing key comes from
// configuration, never from source.
type Codec struct {
	key []byte
}

func NewCodec(secret string) Codec {
	return Codec{key: []byte(secret)}
}

// Generate creates a signed JWT for a specific user.
func (c Codec) Generate(userID string, role domain.Role, ttl time.Duration) (string, error) {
	claims := &CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "bloodlink",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.key)
}

// Validate parses the credential and checks signature and expiration.
// Failures are mapped onto the credential error taxonomy so callers never
// need to know jwt internals.
func (c Codec) Validate(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return c.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrExpiredCredential
		}
		return nil, apperrors.ErrInvalidCredential
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidCredential
	}
	return claims, nil
}
