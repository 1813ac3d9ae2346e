package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/infra/events"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher degrades to a no-op when RabbitMQ is not configured
// or unreachable; booking events are best-effort.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	if cfg.MQ.URL == "" {
		slog.Info("no message broker configured, booking events disabled")
		return commands.NewNopPublisher()
	}

	publisher, cleanup, err := events.NewRabbitPublisher(cfg.MQ)
	if err != nil {
		slog.Warn("failed to connect to message broker, booking events disabled", "error", err.Error())
		return commands.NewNopPublisher()
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return publisher
}
