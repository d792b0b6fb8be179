package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/RINKESH2497/todo-app-fullstack/core"
)

// Passwords implements core.PasswordHasher with bcrypt.
type Passwords struct {
	Cost int
}

func NewPasswords(cost int) Passwords {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return Passwords{Cost: cost}
}

func (p Passwords) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (p Passwords) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return core.ErrInvalidCredentials
	}
	return nil
}
