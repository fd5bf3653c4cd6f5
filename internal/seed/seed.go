package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/schoolhub/internal/app/models"
	appRepos "github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
)

// AdminSeed describes the bootstrap admin account.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// CreateDefaultAdmin creates the bootstrap admin on a database without admins.
// It does nothing when the seed has no password or an admin already exists.
func CreateDefaultAdmin(ctx context.Context, adminRepo appRepos.IAdminRepository, seed AdminSeed, lgr zerolog.Logger) error {
	if seed.Password == "" || seed.Email == "" {
		lgr.Debug().Msg("No bootstrap admin configured, skipping seed")
		return nil
	}

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int64("admins", count).Msg("Admins already present, skipping seed")
		return nil
	}

	hashed, err := auth.HashPassword(seed.Password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	admin := &appModels.Admin{Name: seed.Name, Email: seed.Email, Password: hashed}
	if err := adminRepo.Create(ctx, admin); err != nil {
		// Another instance seeded concurrently.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	lgr.Info().Int64("adminID", admin.ID).Str("email", admin.Email).Msg("Bootstrap admin created")
	return nil
}
