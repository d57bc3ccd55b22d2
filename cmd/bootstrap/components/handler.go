package components

import (
	"github.com/CamiloCortesM/nex-stay/internal/handler"
	"github.com/CamiloCortesM/nex-stay/internal/handler/api"
	"github.com/CamiloCortesM/nex-stay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewRoomHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
