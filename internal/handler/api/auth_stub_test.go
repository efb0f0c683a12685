//go:build unit

package api_test

import (
	"net/http"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearerToken = "bearer-token"

// stubAuth stands in for the JWT middleware: any bearer token authenticates as a.
func stubAuth(a *actor.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, *a)
		c.Next()
	}
}

func newActor(role actor.Role) actor.Actor {
	return actor.Actor{ID: uuid.New(), Role: role, PropertyID: uuid.New()}
}
