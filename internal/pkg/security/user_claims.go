package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Stride"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims carries the authenticated user identity inside the token.
type UserClaims struct {
	UserID   uint64 `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}
