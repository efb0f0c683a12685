//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/pkg/config"
	"room-stay-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service does, signed with the test secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role actor.Role, propertyID uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, role, propertyID)
	require.NoError(t, err)
	return token
}

// TokenFor is GenerateToken for a fresh user with the given role.
func (h *JWTHelper) TokenFor(t *testing.T, role actor.Role, propertyID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), role, propertyID)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role actor.Role, propertyID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(userID, role, propertyID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
