package domain

import (
	"errors"
	"time"
)

// Role codes as they appear on the wire and in JWT claims.
const (
	RoleCandidate = "CAN"
	RoleRecruiter = "REC"
	RoleAdmin     = "ADM"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrAccountLocked = errors.New("account locked")
var ErrSessionNotFound = errors.New("session not found")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether s is one of the known role codes.
func ValidRole(s string) bool {
	switch s {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// User models an account in the system.
type User struct {
	ID           string     `json:"id"`
	UUID         string     `json:"uuid"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Locked       bool       `json:"locked"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// Identity is the authenticated actor for one session: the subset of User
// that travels in the token and the session registry.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"-"`
}
