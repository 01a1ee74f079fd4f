package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campusspace/backend/internal/app/models"
	appRepos "github.com/campusspace/backend/internal/app/repositories"
	"github.com/campusspace/backend/internal/config"
	pkgAuth "github.com/campusspace/backend/internal/pkg/auth"
)

// CreateDefaultAdmin seeds an initial admin account when none exists.
// Registration is admin-only and there is no anonymous self-service, so a
// fresh database would otherwise be unusable.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.AdminExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	email := config.GetEnv("ADMIN_EMAIL", "admin@campus-space.app")
	password := config.GetEnv("ADMIN_PASSWORD", "changeme123")

	hashed, err := pkgAuth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		FullName: "Administrator",
		Email:    email,
		Password: hashed,
		IsAdmin:  true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("email", email).Msg("Seeded default admin account, change its password")
	return nil
}
