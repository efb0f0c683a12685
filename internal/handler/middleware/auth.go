package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/handler/httperr"
	"room-stay-engine/internal/pkg/errs"
	"room-stay-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errTokenMissing      = errs.New("access token missing")
	errInsufficientRole  = errs.New("insufficient role")
	errActorNotInContext = errs.New("actor not set on context")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
			return
		}

		a, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetActor(c, a)
		c.Set("jwt_claims", map[string]any{
			"user_id":     a.ID.String(),
			"role":        a.Role.String(),
			"property_id": a.PropertyID.String(),
		})
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole actor.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errActorNotInContext, "Internal server error", nil)
			return
		}

		if !a.Role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func SetActor(c *gin.Context, a actor.Actor) {
	c.Set(ctxActorKey, a)
}

func GetActor(c *gin.Context) (actor.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return actor.Actor{}, false
	}

	a, ok := v.(actor.Actor)
	return a, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}
