package api

import (
	"net/http"
	"strconv"
	"time"

	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	policy              *shared.Policy
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries, policy *shared.Policy) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		policy:              policy,
	}
}

// @Summary Room availability for a date
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {array} queries.RoomAvailabilityView
// @Failure 400 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) RoomAvailability(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	date := h.policy.Today()
	if raw := c.Query("date"); raw != "" {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			abortBadRequest(c, errInvalidQuery, "date must be YYYY-MM-DD")
			return
		}
		date = d
	}

	views, err := h.availabilityQueries.RoomAvailability(c.Request.Context(), a.PropertyID, date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Month summary
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param month query int false "1-12, defaults to the current month"
// @Param year query int false "defaults to the current year"
// @Success 200 {object} queries.MonthSummaryView
// @Failure 400 {object} httperr.Response
// @Router /api/availability/summary [get]
func (h *AvailabilityHandler) MonthSummary(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	today := h.policy.Today()
	month, ok := intQuery(c, "month", int(today.Month()))
	if !ok {
		return
	}
	year, ok := intQuery(c, "year", today.Year())
	if !ok {
		return
	}

	view, err := h.availabilityQueries.MonthSummary(c.Request.Context(), a.PropertyID, time.Month(month), year)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		abortBadRequest(c, errInvalidQuery, name+" must be a number")
		return 0, false
	}
	return n, true
}
