package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid means the token is malformed or its signature does not match.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired means the token was valid but is past its expiry.
	ErrTokenExpired = errors.New("expired token")
)

// TokenIssuer signs and verifies the stateless bearer tokens handed out at
// signup/login. Tokens carry only user_id and exp; validity is determined by
// signature and expiry alone, so rotating the secret invalidates everything
// outstanding.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue returns a signed token for the given user id. Every token carries an
// expiry; there is no way to mint a non-expiring one.
func (t *TokenIssuer) Issue(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses the token and returns the embedded user id. It fails with
// ErrTokenExpired when past expiry and ErrTokenInvalid for everything else.
func (t *TokenIssuer) Verify(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrTokenInvalid
	}
	return uint(id), nil
}
