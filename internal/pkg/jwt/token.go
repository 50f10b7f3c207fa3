// Package jwt adapts externally issued bearer tokens into internal identity.
// Tokens are verified at the edge and their subject is trusted verbatim;
// session management happens upstream.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/rickshawlabs/dispatch/internal/pkg/models"
)

// GenerateToken generates a signed token for the given user and role
func GenerateToken(userID, role string, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, errors.New("invalid token")
}

// UserIDFromClaims extracts the user id claim as a string
func UserIDFromClaims(claims *jwt.MapClaims) (string, error) {
	raw, ok := (*claims)["user_id"]
	if !ok {
		return "", errors.New("missing user_id claim")
	}
	userID, ok := raw.(string)
	if !ok || userID == "" {
		return "", errors.New("invalid user_id claim")
	}
	return userID, nil
}
