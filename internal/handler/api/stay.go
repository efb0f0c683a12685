package api

import (
	"net/http"

	reqdto "room-stay-engine/internal/handler/dto/request"
	"room-stay-engine/internal/usecase/commands"
	"room-stay-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StayHandler struct {
	stayCommands commands.StayCommands
	stayQueries  queries.StayQueries
}

func NewStayHandler(stayCommands commands.StayCommands, stayQueries queries.StayQueries) *StayHandler {
	return &StayHandler{
		stayCommands: stayCommands,
		stayQueries:  stayQueries,
	}
}

// @Summary Walk-in check-in
// @Tags stays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WalkInRequest true "Guest and dates"
// @Success 201 {object} queries.StayView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/stays [post]
func (h *StayHandler) CheckIn(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.WalkInRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortBadRequest(c, err, "Invalid room reference")
		return
	}

	view, err := h.stayCommands.CheckIn(c.Request.Context(), a, in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Get stay
// @Tags stays
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stay ID"
// @Success 200 {object} queries.StayView
// @Failure 404 {object} httperr.Response
// @Router /api/stays/{id} [get]
func (h *StayHandler) GetStay(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "stay")
	if !ok {
		return
	}

	view, err := h.stayQueries.GetByID(c.Request.Context(), a.PropertyID, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Link order
// @Description Add an external order to the stay's ledger. Linking the same order again returns 409 with the current totals.
// @Tags stays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stay ID"
// @Param request body reqdto.LinkOrderRequest true "Order"
// @Success 200 {object} queries.LedgerTotalsView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/stays/{id}/orders [post]
func (h *StayHandler) LinkOrder(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "stay")
	if !ok {
		return
	}
	var req reqdto.LinkOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	totals, err := h.stayCommands.LinkOrder(c.Request.Context(), a, req.ToInput(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// @Summary Checkout
// @Description Close the stay and bill it from its records
// @Tags stays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stay ID"
// @Param request body reqdto.CheckoutRequest true "Final payment and adjustments"
// @Success 200 {object} queries.InvoiceView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/stays/{id}/checkout [post]
func (h *StayHandler) Checkout(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "stay")
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	invoice, err := h.stayCommands.Checkout(c.Request.Context(), a, req.ToInput(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// @Summary Get invoice
// @Description Rebuild the bill from the stay's records
// @Tags stays
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stay ID"
// @Success 200 {object} queries.InvoiceView
// @Failure 404 {object} httperr.Response
// @Router /api/stays/{id}/invoice [get]
func (h *StayHandler) GetInvoice(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "stay")
	if !ok {
		return
	}

	invoice, err := h.stayQueries.GetInvoice(c.Request.Context(), a.PropertyID, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
