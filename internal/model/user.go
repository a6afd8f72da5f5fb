package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	Name     string
	Login    string
	Password string
}

type UserClaims struct {
	jwt.RegisteredClaims
}

type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
