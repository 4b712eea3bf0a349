package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Theme values persisted for the console UI.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// JWTClaims are the custom claims embedded in issued access tokens.
type JWTClaims struct {
	OperatorID string       `json:"operator_id"`
	Email      string       `json:"email"`
	Role       OperatorRole `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token alongside the operator snapshot.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	Operator    Operator  `json:"operator"`
}

// ThemePreference wraps the persisted theme value.
type ThemePreference struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}
