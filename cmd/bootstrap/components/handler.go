package components

import (
	"room-stay-engine/internal/handler"
	"room-stay-engine/internal/handler/api"
	"room-stay-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewStayHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(rooms *api.RoomHandler, bookings *api.BookingHandler, stays *api.StayHandler, availability *api.AvailabilityHandler) handler.Handlers {
	return handler.Handlers{
		Rooms:        rooms,
		Bookings:     bookings,
		Stays:        stays,
		Availability: availability,
	}
}
