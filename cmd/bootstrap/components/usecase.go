package components

import (
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/usecase"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRoomUseCase,
		commands.NewHousekeepingUseCase,
		commands.NewBookingUseCase,
		commands.NewCustomerUseCase,
		commands.NewFoodUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewTaskQueries,
		queries.NewCustomerQueries,
		queries.NewFoodQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
