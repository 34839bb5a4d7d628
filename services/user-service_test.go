package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rahulranjandev/trello-clone/repositories"
)

func TestRegisterThenLogin(t *testing.T) {
	svc := NewUserService(repositories.NewMemoryUserRepository())
	ctx := context.Background()

	user, err := svc.Register(ctx, "A", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID.IsZero() {
		t.Fatalf("expected a user id")
	}
	if user.Password == "secret1" {
		t.Fatalf("password must be stored hashed")
	}

	logged, err := svc.Login(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("expected login to resolve the registered user")
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "A", "a@x.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(ctx, "B", "a@x.com", "other")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// No second row may have been created for the email.
	user, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if user.Name != "A" {
		t.Fatalf("expected the original user to be untouched, got %q", user.Name)
	}
}

func TestLoginDoesNotEnumerateEmails(t *testing.T) {
	svc := NewUserService(repositories.NewMemoryUserRepository())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "A", "a@x.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, unknownErr := svc.Login(ctx, "nobody@x.com", "secret1")
	_, wrongErr := svc.Login(ctx, "a@x.com", "wrong")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("unknown-email and wrong-password must be indistinguishable")
	}
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	svc := NewUserService(repositories.NewMemoryUserRepository())
	ctx := context.Background()

	first, err := svc.Register(ctx, "A", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, "B", "b@x.com", "secret2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	taken := "b@x.com"
	if _, err := svc.UpdateProfile(ctx, first.ID, nil, &taken); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Re-submitting one's own email is not a conflict.
	own := "a@x.com"
	if _, err := svc.UpdateProfile(ctx, first.ID, nil, &own); err != nil {
		t.Fatalf("update with own email: %v", err)
	}
}
