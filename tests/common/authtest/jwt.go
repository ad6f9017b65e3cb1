//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"ortomat-backend/internal/domain/staff"
	"ortomat-backend/internal/pkg/config"
	"ortomat-backend/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const defaultTTL = 15 * time.Minute

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, jwt.WithIssuer(h.cfg.Issuer)).GenerateToken(staffID, role, defaultTTL)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) Admin(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), staff.RoleAdmin)
}

func (h *JWTHelper) Courier(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), staff.RoleCourier)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, jwt.WithIssuer(h.cfg.Issuer)).GenerateToken(staffID, role, -time.Minute)
	require.NoError(t, err)
	return token
}
