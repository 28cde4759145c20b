package user

import (
	"context"
	"errors"
	"time"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = appErrors.NewConflictError("Username already exists", nil)
	ErrEmailAlreadyExists    = appErrors.NewConflictError("Email already exists", nil)
	ErrInvalidEmail          = appErrors.NewValidationError("Email address is not valid")
	ErrInvalidCredentials    = appErrors.NewNotFoundError("Invalid credentials")
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Service interface {
	Register(ctx context.Context, username, email, password string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, string, error)
	GetUserByID(ctx context.Context, userID int64) (*User, error)
}
