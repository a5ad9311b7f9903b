package domain

import (
	"errors"
	"time"
)

const (
	RoleManager = "manager"
	RoleMember  = "member"
)

var (
	ErrAllFieldsRequired  = errors.New("all fields are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrUserCreateFailed   = errors.New("error while creating the user")
)

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstname"`
	LastName     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role,omitempty"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName returns the display name carried in access-token claims.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Sanitized returns a copy safe to hand back to clients: the password hash
// and stored refresh token are cleared.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	clone.RefreshToken = ""
	return &clone
}
