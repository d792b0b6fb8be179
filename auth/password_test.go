package auth_test

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/RINKESH2497/todo-app-fullstack/auth"
	"github.com/RINKESH2497/todo-app-fullstack/core"
)

func TestPasswords_HashAndCompare(t *testing.T) {
	t.Parallel()

	p := auth.NewPasswords(bcrypt.MinCost)

	hash, err := p.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash equals the raw password")
	}

	if err := p.Compare(hash, "secret1"); err != nil {
		t.Fatalf("Compare rejected the right password: %v", err)
	}

	if err := p.Compare(hash, "wrong"); !errors.Is(err, core.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
