package queries

import "room-stay-engine/internal/usecase/shared"

var (
	ErrRoomNotFound    = shared.ErrRoomNotFound
	ErrBookingNotFound = shared.ErrBookingNotFound
	ErrStayNotFound    = shared.ErrStayNotFound
	ErrValidation      = shared.ErrValidation
)
