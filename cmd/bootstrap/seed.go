package bootstrap

import (
	"context"

	"hotel-booking-api/internal/infra/seed"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase"
	"hotel-booking-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedDefaultAdmin),
)

func SeedDefaultAdmin(lc fx.Lifecycle, cfg config.Config, users usecase.UserReadStore, uow shared.UnitOfWork) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return seed.EnsureDefaultAdmin(ctx, cfg.Seed, users, uow)
		},
	})
}
