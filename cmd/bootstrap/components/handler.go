package components

import (
	"fitbooking/internal/handler"
	"fitbooking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewClassHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
