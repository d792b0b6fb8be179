package core

import (
	"context"
	"errors"
	"net/mail"
	"strings"
)

// MinPasswordLen is the minimum accepted raw password length.
const MinPasswordLen = 6

type UserService struct {
	store  UserStore
	hasher PasswordHasher
}

func NewUserService(store UserStore, hasher PasswordHasher) *UserService {
	return &UserService{store: store, hasher: hasher}
}

// Register creates a user with a one-way hash of the password. Emails are
// stored lowercased so uniqueness is case-insensitive.
func (s *UserService) Register(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || email == "" || len(password) < MinPasswordLen {
		return User{}, ErrInvalidArgs
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, err
	}

	return s.store.CreateUser(ctx, User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
}

// Login resolves the user by email and compares the password against the
// stored hash. Unknown email and hash mismatch are indistinguishable.
func (s *UserService) Login(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidArgs
	}

	u, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (User, error) {
	if id == "" {
		return User{}, ErrInvalidArgs
	}
	return s.store.UserByID(ctx, id)
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}
