package api

import (
	"context"
	"net/http"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/domain/room"
	reqdto "room-stay-engine/internal/handler/dto/request"
	resdto "room-stay-engine/internal/handler/dto/response"
	"room-stay-engine/internal/usecase/commands"
	"room-stay-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary Create room
// @Description Add a room to the caller's property
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.roomCommands.Create(c.Request.Context(), a, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondRoom(c, http.StatusCreated, view)
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	views, err := h.roomQueries.List(c.Request.Context(), a.PropertyID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room
// @Description Look a room up by id or by number
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Room id or number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{ref} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	ref, ok := roomRefParam(c)
	if !ok {
		return
	}
	view, err := h.roomQueries.Get(c.Request.Context(), a.PropertyID, ref)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondRoom(c, http.StatusOK, view)
}

// @Summary Mark room ready
// @Description Housekeeping releases a cleaned or repaired room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Room id or number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{ref}/ready [post]
func (h *RoomHandler) MarkReady(c *gin.Context) {
	h.transition(c, h.roomCommands.MarkReady)
}

// @Summary Take room out of service
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Room id or number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{ref}/out-of-service [post]
func (h *RoomHandler) TakeOutOfService(c *gin.Context) {
	h.transition(c, h.roomCommands.TakeOutOfService)
}

// @Summary Return room to service
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Room id or number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{ref}/back-in-service [post]
func (h *RoomHandler) ReturnToService(c *gin.Context) {
	h.transition(c, h.roomCommands.ReturnToService)
}

// @Summary Schedule maintenance
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Room id or number"
// @Param request body reqdto.ScheduleMaintenanceRequest true "Window"
// @Success 201 {object} queries.MaintenanceView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{ref}/maintenance [post]
func (h *RoomHandler) ScheduleMaintenance(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	ref, ok := roomRefParam(c)
	if !ok {
		return
	}
	var req reqdto.ScheduleMaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.roomCommands.ScheduleMaintenance(c.Request.Context(), a, req.ToInput(ref))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Clear maintenance
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance schedule ID"
// @Success 200 {object} queries.MaintenanceView
// @Failure 404 {object} httperr.Response
// @Router /api/maintenance/{id} [delete]
func (h *RoomHandler) ClearMaintenance(c *gin.Context) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "maintenance")
	if !ok {
		return
	}

	view, err := h.roomCommands.ClearMaintenance(c.Request.Context(), a, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type roomTransition func(ctx context.Context, a actor.Actor, ref room.Ref) (*queries.RoomView, error)

func (h *RoomHandler) transition(c *gin.Context, fn roomTransition) {
	a, ok := mustActor(c)
	if !ok {
		return
	}
	ref, ok := roomRefParam(c)
	if !ok {
		return
	}
	view, err := fn(c.Request.Context(), a, ref)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondRoom(c, http.StatusOK, view)
}

func (h *RoomHandler) respondRoom(c *gin.Context, status int, view *queries.RoomView) {
	res, err := resdto.FromRoomView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(status, res)
}
