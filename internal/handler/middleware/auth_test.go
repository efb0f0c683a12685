//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/handler/middleware"
	"room-stay-engine/internal/pkg/errs"
	"room-stay-engine/tests/common/httptest"
	usecasemock "room-stay-engine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, minRole actor.Role) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	router.GET("/protected", auth.RequireAuth(), auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		a, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": a.ID.String(), "property_id": a.PropertyID.String()})
	})
	return router, validator
}

func TestRequireAuth(t *testing.T) {
	a := actor.Actor{ID: uuid.New(), Role: actor.RoleOperator, PropertyID: uuid.New()}

	t.Run("success: actor is available to the handler", func(t *testing.T) {
		router, validator := newAuthRouter(t, actor.RoleViewer)
		validator.EXPECT().ValidateToken("good-token").Return(a, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, a.ID.String(), body["user_id"])
		assert.Equal(t, a.PropertyID.String(), body["property_id"])
	})

	t.Run("error: 401 without a token", func(t *testing.T) {
		router, _ := newAuthRouter(t, actor.RoleViewer)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("error: 401 on a rejected token", func(t *testing.T) {
		router, validator := newAuthRouter(t, actor.RoleViewer)
		validator.EXPECT().ValidateToken("expired").Return(actor.Actor{}, errs.New("token is expired"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "expired")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	testCases := []struct {
		name       string
		role       actor.Role
		minRole    actor.Role
		expectCode int
	}{
		{name: "viewer reads", role: actor.RoleViewer, minRole: actor.RoleViewer, expectCode: http.StatusOK},
		{name: "viewer cannot write", role: actor.RoleViewer, minRole: actor.RoleOperator, expectCode: http.StatusForbidden},
		{name: "operator writes", role: actor.RoleOperator, minRole: actor.RoleOperator, expectCode: http.StatusOK},
		{name: "operator cannot administer", role: actor.RoleOperator, minRole: actor.RoleAdmin, expectCode: http.StatusForbidden},
		{name: "admin administers", role: actor.RoleAdmin, minRole: actor.RoleAdmin, expectCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, validator := newAuthRouter(t, tc.minRole)
			validator.EXPECT().ValidateToken("token").Return(actor.Actor{ID: uuid.New(), Role: tc.role, PropertyID: uuid.New()}, nil)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "token")
			if tc.expectCode == http.StatusOK {
				httptest.AssertSuccessResponse(t, rec, tc.expectCode, nil)
			} else {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, "Insufficient permissions")
			}
		})
	}
}
