package api

import (
	"net/http"
	"strings"

	reqdto "room-stay-engine/internal/handler/dto/request"
	resdto "room-stay-engine/internal/handler/dto/response"
	"room-stay-engine/internal/usecase/commands"
	"room-stay-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Hold a room for a guest over [check_in, check_out). An Idempotency-Key replays the first result.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	idempotencyKey, ok := h.idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortBadRequest(c, err, "Invalid room reference")
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), a, in, idempotencyKey)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking, result.IsReplayed))
}

// @Summary Validate booking
// @Description Run the conflict check without booking anything
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateBookingRequest true "Candidate booking"
// @Success 200 {object} queries.ValidationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/validate [post]
func (h *BookingHandler) ValidateBooking(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.ValidateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortBadRequest(c, err, "Invalid room reference")
		return
	}

	view, err := h.bookingQueries.Validate(c.Request.Context(), a, in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "booking")
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), a.PropertyID, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel booking
// @Description Cancelling an already cancelled booking succeeds without changes
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "booking")
	if !ok {
		return
	}

	view, err := h.bookingCommands.Cancel(c.Request.Context(), a, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Check in a booking
// @Description Convert a confirmed booking into a stay
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConvertBookingRequest false "Check-in details"
// @Success 201 {object} queries.StayView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/check-in [post]
func (h *BookingHandler) ConvertToStay(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "booking")
	if !ok {
		return
	}
	var req reqdto.ConvertBookingRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	view, err := h.bookingCommands.ConvertToStay(c.Request.Context(), a, req.ToInput(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// idempotencyKey returns nil when the header is absent; the key is optional here.
func (h *BookingHandler) idempotencyKey(c *gin.Context) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		abortBadRequest(c, errInvalidIdempotency, "Invalid Idempotency-Key format")
		return nil, false
	}
	return &key, true
}
