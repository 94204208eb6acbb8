package components

import (
	"parking-reservation/internal/handler"
	"parking-reservation/internal/handler/api"
	"parking-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewLotHandler,
		api.NewReservationHandler,
		api.NewUserHandler,
		api.NewConsistencyHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
