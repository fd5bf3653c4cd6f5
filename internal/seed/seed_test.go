package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolhub/internal/app/repositories/repotest"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateDefaultAdmin(t *testing.T) {
	auth.BcryptCost = bcrypt.MinCost
	t.Cleanup(func() { auth.BcryptCost = 12 })

	ctx := context.Background()
	admins := repotest.NewStore().Admins()
	seed := AdminSeed{Name: "Administrator", Email: "admin@school.edu", Password: "changeme"}

	if err := CreateDefaultAdmin(ctx, admins, AdminSeed{Email: "admin@school.edu"}, zerolog.Nop()); err != nil {
		t.Fatalf("seed without password: %v", err)
	}
	if n, _ := admins.Count(ctx); n != 0 {
		t.Fatalf("expected no admin without a password, got %d", n)
	}

	if err := CreateDefaultAdmin(ctx, admins, seed, zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	admin, err := admins.GetByEmail(ctx, "admin@school.edu")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if !auth.CheckPassword(admin.Password, "changeme") {
		t.Fatalf("expected the seeded password to be hashed and verifiable")
	}

	// A second run leaves the existing admin alone.
	if err := CreateDefaultAdmin(ctx, admins, AdminSeed{Name: "Other", Email: "other@school.edu", Password: "x"}, zerolog.Nop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if n, _ := admins.Count(ctx); n != 1 {
		t.Fatalf("expected exactly one admin, got %d", n)
	}
	if _, err := admins.GetByEmail(ctx, "other@school.edu"); err == nil {
		t.Fatalf("expected no second admin")
	}
}
