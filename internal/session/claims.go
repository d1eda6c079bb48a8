package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/workling/portal/internal/core/domain"
)

// identityFromToken extracts a partial user identity from the token's JWT
// claims without verifying the signature. Returns domain.ErrTokenExpired
// when the exp claim has passed.
func identityFromToken(token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			return nil, domain.ErrTokenExpired
		}
	}

	user := &domain.User{
		ID:    stringClaim(claims, "id", "sub", "userId"),
		Name:  stringClaim(claims, "name"),
		Email: stringClaim(claims, "email"),
		Role:  stringClaim(claims, "role"),
	}
	if user.ID == "" && user.Email == "" && user.Role == "" {
		return nil, fmt.Errorf("token carries no identity claims")
	}
	return user, nil
}

// stringClaim returns the first of keys present in claims as a string.
func stringClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
