package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the anonymous session key. There are no user
// accounts; the token only ties a browser to its cart.
type SessionClaims struct {
	SessionKey string `json:"session_key"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev-session-secret"
	}
	return []byte(secret)
}

// GenerateSessionToken signs a JWT for a session key, valid for 24 hours.
func GenerateSessionToken(sessionKey string) (string, error) {
	claims := SessionClaims{
		SessionKey: sessionKey,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateSessionToken parses a session token and returns its claims.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionKey == "" {
		return nil, errors.New("token de sessão inválido")
	}
	return claims, nil
}
