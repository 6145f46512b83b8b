package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName holds the display-session token.
const CookieName = "grid_session"

var ErrInvalidToken = errors.New("invalid session token")

// Claims carries the active selection as pool indices, so the server keeps
// no per-session state.
type Claims struct {
	Selection []int  `json:"sel"`
	PoolSize  int    `json:"pool"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func GenerateToken(secret []byte, sessionID string, selection []int, poolSize int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Selection: selection,
		PoolSize:  poolSize,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
