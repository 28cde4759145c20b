package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 100
	bcryptCost        = 12
)

type TokenIssuer interface {
	GenerateAccessJWT(userID int64, username string) (string, error)
}

type service struct {
	repo       Repository
	tokens     TokenIssuer
	bcryptCost int
}

func NewUserService(repo Repository, tokens TokenIssuer) Service {
	return &service{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *service) hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	return string(hashedPasswordBytes), err
}

func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(currPassword))
	return err == nil
}

func validateEmailAddress(email string) error {
	if utf8.RuneCountInString(email) > maxEmailLength {
		return ErrInvalidEmail
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) Register(ctx context.Context, username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, appErrors.NewValidationError("Username, email and password are required")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return nil, appErrors.NewValidationError(fmt.Sprintf("Username must be at most %d characters", maxUsernameLength))
	}
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}

	existingUser, err := s.repo.userExistsByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, appErrors.NewInternalError("could not check existing users", err)
	}
	if existingUser != nil {
		if existingUser.Username == username {
			return nil, ErrUsernameAlreadyExists
		}
		return nil, ErrEmailAlreadyExists
	}

	passwordHash, err := s.hashPassword(password)
	if err != nil {
		return nil, appErrors.NewInternalError("could not hash password", err)
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	// The unique constraints still catch a concurrent registration.
	if err := s.repo.createUser(ctx, user); err != nil {
		if errors.Is(err, ErrUsernameAlreadyExists) || errors.Is(err, ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, appErrors.NewInternalError("could not create user", err)
	}

	return user, nil
}

// Login reports an unknown user and a wrong password the same way.
func (s *service) Login(ctx context.Context, username, password string) (*User, string, error) {
	user, err := s.repo.getUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", appErrors.NewInternalError("could not load user", err)
	}

	if !doPasswordsMatch(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessJWT(user.ID, user.Username)
	if err != nil {
		return nil, "", appErrors.NewInternalError("could not issue token", err)
	}
	return user, token, nil
}

func (s *service) GetUserByID(ctx context.Context, userID int64) (*User, error) {
	user, err := s.repo.getUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, appErrors.NewNotFoundError("User not found")
		}
		return nil, appErrors.NewInternalError("could not load user", err)
	}
	return user, nil
}
