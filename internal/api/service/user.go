package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wanderstay/wanderstay/internal/api/domain"
	"github.com/wanderstay/wanderstay/internal/api/store"
	"github.com/wanderstay/wanderstay/pkg/cryptox"
	"github.com/wanderstay/wanderstay/pkg/idx"
)

// ErrUsernameTaken reports a registration against an existing username or
// email.
var ErrUsernameTaken = errors.New("username_taken")

type UserService struct {
	Store store.Store
}

// RegisterParams carries the fields a new account needs. Password is
// plaintext here and hashed before it touches the store.
type RegisterParams struct {
	Username   string
	Password   string
	Name       string
	Email      string
	Phone      string
	PictureURL string
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// Register creates a new account with a bcrypt password hash and a fresh
// ULID.
func (s *UserService) Register(ctx context.Context, p RegisterParams) (domain.User, error) {
	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     p.Username,
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: hash,
		Phone:        p.Phone,
		PictureURL:   p.PictureURL,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}
