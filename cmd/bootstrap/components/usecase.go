package components

import (
	"fitbooking/internal/pkg/clock"
	"fitbooking/internal/usecase/commands"
	"fitbooking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewBookingCommands,
		queries.NewClassQueries,
		queries.NewBookingQueries,
	),
)
