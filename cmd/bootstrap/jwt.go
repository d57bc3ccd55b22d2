package bootstrap

import (
	"github.com/CamiloCortesM/nex-stay/internal/handler/middleware"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/config"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
