package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// Context keys set by middleware.
const (
	UserIDKey    = contextKey("userID")
	RequestIDKey = contextKey("requestID")
)

// generateJTI creates a random token id.
func generateJTI() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateSessionToken issues a signed session token naming the user a
// to-do list belongs to. Clients that present it are no longer subject
// to the "last created user wins" fallback.
func GenerateSessionToken(userID int) (string, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return "", errors.New("SESSION_SECRET is not set")
	}

	now := time.Now()
	jti, err := generateJTI()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"uid": userID,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
		"jti": jti,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken checks signature and registered claims and returns
// the user id the token was issued for.
func ValidateSessionToken(tokenString string) (int, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return 0, errors.New("SESSION_SECRET is not set")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return 0, errors.New("missing uid claim")
	}
	return int(uid), nil
}
