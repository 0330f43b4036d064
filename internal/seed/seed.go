package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/krmu/admissions/internal/app/models"
	"github.com/krmu/admissions/internal/app/repositories"
	"github.com/krmu/admissions/internal/pkg/apperrors"
	"github.com/krmu/admissions/internal/pkg/auth"
)

// Default admin credentials. Registration only accepts counsellor and
// teacher roles, so the admin account is seeded here; the password is
// meant to be changed after first login.
const (
	defaultAdminUsername = "admin"
	defaultAdminPhone    = "9999999999"
	defaultAdminEmail    = "admin@krmu.edu.in"
	defaultAdminPassword = "ChangeMe123"
)

// CreateDefaultData creates the default admin account if it doesn't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return err
	}
	if exists {
		return nil
	}

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:    defaultAdminUsername,
		PhoneNumber: defaultAdminPhone,
		Email:       defaultAdminEmail,
		Password:    hashedPassword,
		Role:        models.RoleAdmin,
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent process may have seeded it first
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
