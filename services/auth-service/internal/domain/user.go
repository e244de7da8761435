package domain

import (
	"errors"
	"time"
)

type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenGenerateFailed = errors.New("generate token failed")
	ErrInvalidToken        = errors.New("invalid token")
)

// User is a citizen account. Password always holds the bcrypt hash, never the
// raw secret.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRepository interface {
	Save(user *User) error
	FindByEmail(email string) (*User, error)
	FindByID(id string) (*User, error)
}

type PasswordEncoder interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) bool
}

type TokenClaims struct {
	UserID    string
	Name      string
	Role      Role
	ExpiresAt time.Time
}

type TokenService interface {
	GenerateAccessToken(userID, name string, role Role) (string, time.Time, error)
	GenerateRefreshToken(userID, name string, role Role) (string, time.Time, error)
	ValidateToken(token string) (*TokenClaims, error)
	RefreshToken(refreshToken string) (string, time.Time, error)
}
