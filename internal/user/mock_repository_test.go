package user

import (
	"context"
	"time"
)

type mockRepository struct {
	users     []*User
	createErr error
}

func (m *mockRepository) createUser(_ context.Context, user *User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = int64(len(m.users) + 1)
	user.CreatedAt = time.Now()
	m.users = append(m.users, user)
	return nil
}

func (m *mockRepository) getUserByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(_ context.Context, id int64) (*User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) userExistsByUsernameOrEmail(_ context.Context, username, email string) (*User, error) {
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateAccessJWT(userID int64, username string) (string, error) {
	return "token-for-" + username, nil
}
