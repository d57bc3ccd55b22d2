package components

import (
	"github.com/CamiloCortesM/nex-stay/internal/infra/readstore"
	repo_impl "github.com/CamiloCortesM/nex-stay/internal/infra/repository"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/commands"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories for commands
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
	),
)
