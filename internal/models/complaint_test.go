package models_test

import (
	"testing"

	"laporpak/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []models.Status{
		models.StatusSubmitted, models.StatusReceived, models.StatusRejected,
		models.StatusProcessing, models.StatusApproved, models.StatusCompleted,
	} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, models.Status("pending").Valid())
	assert.False(t, models.Status("").Valid())
	assert.False(t, models.Status("SUBMITTED").Valid())
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, models.StatusRejected.Terminal())
	assert.True(t, models.StatusCompleted.Terminal())

	for _, s := range []models.Status{
		models.StatusSubmitted, models.StatusReceived,
		models.StatusProcessing, models.StatusApproved,
	} {
		assert.False(t, s.Terminal(), "%q must not be terminal", s)
	}
}

func TestStatusApprovable(t *testing.T) {
	assert.True(t, models.StatusReceived.Approvable())
	assert.True(t, models.StatusProcessing.Approvable())

	for _, s := range []models.Status{
		models.StatusSubmitted, models.StatusRejected,
		models.StatusApproved, models.StatusCompleted,
	} {
		assert.False(t, s.Approvable(), "%q must not be approvable", s)
	}
}

func TestRoleGates(t *testing.T) {
	assert.True(t, models.RoleAdmin.CanVerify())
	assert.True(t, models.RoleMasterAdmin.CanVerify())
	assert.False(t, models.RolePimpinan.CanVerify())

	assert.True(t, models.RolePimpinan.CanApprove())
	assert.False(t, models.RoleAdmin.CanApprove())
	assert.False(t, models.RoleMasterAdmin.CanApprove())

	assert.True(t, models.RoleAdmin.CanComplete())
	assert.True(t, models.RoleMasterAdmin.CanComplete())
	assert.False(t, models.RolePimpinan.CanComplete())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, models.RoleAdmin.Valid())
	assert.True(t, models.RoleMasterAdmin.Valid())
	assert.True(t, models.RolePimpinan.Valid())
	assert.False(t, models.Role("superuser").Valid())
	assert.False(t, models.Role("").Valid())
}
