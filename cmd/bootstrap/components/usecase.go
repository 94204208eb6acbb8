package components

import (
	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/jwt"
	"parking-reservation/internal/pkg/password"
	"parking-reservation/internal/usecase"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"

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
	fx.Annotate(
		password.NewHasher,
		fx.As(new(commands.PasswordHasher)),
	),
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewLotCommands,
		commands.NewParkingCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLotQueries,
		queries.NewReservationQueries,
		queries.NewUserQueries,
		queries.NewConsistencyQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
