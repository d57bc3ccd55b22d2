package bootstrap

import (
	"github.com/CamiloCortesM/nex-stay/internal/infra/events"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/config"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when no broker is
// configured. Reservation commands never fail on publish errors either way.
func NewEventPublisher(cfg config.Config) commands.EventPublisher {
	if cfg.AMQP.URL == "" {
		return events.NewNoopPublisher()
	}
	return events.NewAMQPPublisher(cfg.AMQP.URL)
}
