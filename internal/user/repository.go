package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type Repository interface {
	createUser(ctx context.Context, user *User) error
	getUserByUsername(ctx context.Context, username string) (*User, error)
	getUserByID(ctx context.Context, id int64) (*User, error)
	userExistsByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	err := r.db.QueryRowContext(ctx, query, user.Username, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dupErr := duplicateUserError(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

// duplicateUserError decides from the violated constraint whether the
// username or the e-mail is taken.
func duplicateUserError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	constraint := strings.ToLower(pgErr.ConstraintName + " " + pgErr.Detail)
	switch {
	case strings.Contains(constraint, "username"):
		return ErrUsernameAlreadyExists
	case strings.Contains(constraint, "email"):
		return ErrEmailAlreadyExists
	default:
		return nil
	}
}

func (r *userRepository) getUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	return r.getOne(ctx, query, username)
}

func (r *userRepository) getUserByID(ctx context.Context, id int64) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *userRepository) userExistsByUsernameOrEmail(ctx context.Context, username, email string) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1 OR email = $2
		LIMIT 1
	`
	return r.getOne(ctx, query, username, email)
}

func (r *userRepository) getOne(ctx context.Context, query string, args ...interface{}) (*User, error) {
	var user User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %w", err)
	}
	return &user, nil
}
