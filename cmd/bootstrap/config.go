package bootstrap

import (
	"github.com/CamiloCortesM/nex-stay/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
