package components

import (
	"room-stay-engine/internal/pkg/clock"
	"room-stay-engine/internal/pkg/config"
	"room-stay-engine/internal/usecase"
	"room-stay-engine/internal/usecase/commands"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, clk clock.Clock) (*shared.Policy, error) {
		return shared.NewPolicy(cfg.Stay, clk)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomUseCase,
		commands.NewBookingUseCase,
		commands.NewStayUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewStayQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
