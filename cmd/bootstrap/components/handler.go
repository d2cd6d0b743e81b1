package components

import (
	"hotel-ops/internal/handler"
	"hotel-ops/internal/handler/api"
	"hotel-ops/internal/handler/middleware"
	"hotel-ops/internal/pkg/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewHousekeepingHandler,
		api.NewCustomerHandler,
		api.NewFoodHandler,
		api.NewFileHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(
		metrics.Register,
		handler.NewRouter,
	),
)

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	booking *api.BookingHandler,
	housekeeping *api.HousekeepingHandler,
	customer *api.CustomerHandler,
	food *api.FoodHandler,
	file *api.FileHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Room:         room,
		Booking:      booking,
		Housekeeping: housekeeping,
		Customer:     customer,
		Food:         food,
		File:         file,
	}
}
