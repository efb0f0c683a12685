package api

import (
	"net/http"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/handler/httperr"
	"room-stay-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// mustActor aborts with 500 when auth did not run; routes are wired so it always does.
func mustActor(c *gin.Context) (actor.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, "Internal server error", nil)
	}
	return a, ok
}

func uuidParam(c *gin.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, errInvalidID, "Invalid "+what+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

func roomRefParam(c *gin.Context) (room.Ref, bool) {
	ref, err := room.ParseRef(c.Param("ref"))
	if err != nil {
		abortBadRequest(c, err, "Invalid room reference")
		return room.Ref{}, false
	}
	return ref, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortBadRequest(c, errInvalidRequest, "Invalid request format")
		return false
	}
	return true
}
