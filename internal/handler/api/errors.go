package api

import (
	"net/http"

	"room-stay-engine/internal/handler/dto/response"
	"room-stay-engine/internal/handler/httperr"
	"room-stay-engine/internal/pkg/errs"
	"room-stay-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidID          = errs.New("invalid id")
	errInvalidRequest     = errs.New("invalid request body")
	errInvalidQuery       = errs.New("invalid query parameter")
	errInvalidIdempotency = errs.New("invalid idempotency key")
	errMissingActor       = errs.New("actor missing from context")
)

type errorMapping struct {
	target error
	status int
	// message is used as is; empty means the error's own text is safe to show
	message string
}

// Order matters: the first matching sentinel wins.
var useCaseErrors = []errorMapping{
	{commands.ErrValidation, http.StatusBadRequest, ""},
	{commands.ErrBookingTooFarAhead, http.StatusUnprocessableEntity, ""},
	{commands.ErrOverrideNotPermitted, http.StatusForbidden, ""},
	{commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrStayNotFound, http.StatusNotFound, "Stay not found"},
	{commands.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{commands.ErrMaintenanceNotFound, http.StatusNotFound, "Maintenance schedule not found"},
	{commands.ErrRoomUnavailable, http.StatusConflict, "Room is unavailable"},
	{commands.ErrRoomNotReady, http.StatusConflict, ""},
	{commands.ErrInvalidRoomTransition, http.StatusConflict, ""},
	{commands.ErrDuplicateRoomNumber, http.StatusConflict, "Room number already exists"},
	{commands.ErrBookingNotConfirmed, http.StatusConflict, "Booking is not confirmed"},
	{commands.ErrStayNotActive, http.StatusConflict, "Stay is not active"},
	{commands.ErrOrderAlreadyBilled, http.StatusConflict, "Order already billed"},
	{commands.ErrMaintenanceInactive, http.StatusConflict, "Maintenance schedule already cleared"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "Request with this Idempotency-Key is still being processed"},
	{commands.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "Idempotency-Key was used with a different request"},
}

// abortWithUseCaseError maps command and query errors to the JSON error envelope.
func abortWithUseCaseError(c *gin.Context, err error) {
	var conflictErr *commands.ConflictError
	if errs.As(err, &conflictErr) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking conflict", response.ConflictDetail{Conflicts: conflictErr.Conflicts})
		return
	}
	var linkedErr *commands.OrderLinkedError
	if errs.As(err, &linkedErr) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Order already linked", response.OrderLinkedDetail{Totals: linkedErr.Totals})
		return
	}
	if errs.Is(err, commands.ErrOrderAlreadyLinked) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Order already linked", nil)
		return
	}
	if errs.Is(err, commands.ErrConcurrencyConflict) {
		c.Header("Retry-After", "1")
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Concurrent update, please retry", nil)
		return
	}

	for _, m := range useCaseErrors {
		if errs.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			httperr.AbortWithError(c, m.status, err, msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
