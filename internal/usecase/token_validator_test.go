//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"ortomat-backend/internal/domain/staff"
	"ortomat-backend/internal/pkg/jwt"
	"ortomat-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("secret")
	v := usecase.NewTokenValidator(svc)
	id := uuid.New()

	token, err := svc.GenerateToken(id, staff.RoleAdmin, time.Hour)
	require.NoError(t, err)

	gotID, role, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, staff.RoleAdmin, role)

	_, _, err = v.ValidateToken("garbage")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
