package seed

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/password"
	"hotel-booking-api/internal/usecase"
	"hotel-booking-api/internal/usecase/shared"
)

// EnsureDefaultAdmin creates the bootstrap admin account on first start.
// Schema seeds cannot carry a bcrypt hash, so the user is created here.
func EnsureDefaultAdmin(ctx context.Context, cfg config.SeedConfig, users usecase.UserReadStore, uow shared.UnitOfWork) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Info("default admin seeding disabled")
		return nil
	}

	if _, _, err := users.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return errs.Wrap(err, "failed to look up default admin")
	}

	username, err := user.NewUsername(cfg.AdminUsername)
	if err != nil {
		return errs.Wrap(err, "invalid default admin username")
	}
	email, err := user.NewEmail(cfg.AdminEmail)
	if err != nil {
		return errs.Wrap(err, "invalid default admin email")
	}
	hash, err := password.HashPassword(cfg.AdminPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash default admin password")
	}

	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Users().Create(ctx, username, email, hash, user.RoleAdmin)
		if createErr != nil {
			// A concurrent instance may have won the race.
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return nil
			}
			return createErr
		}
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to create default admin")
	}

	slog.Info("default admin created", "email", cfg.AdminEmail)
	return nil
}
