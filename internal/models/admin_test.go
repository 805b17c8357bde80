package models_test

import (
	"testing"

	"laporpak/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	admin := &models.Admin{Username: "budi", Password: "rahasia123"}

	require.NoError(t, admin.HashPassword())
	assert.NotEqual(t, "rahasia123", admin.Password)

	assert.True(t, admin.ComparePassword("rahasia123"))
	assert.False(t, admin.ComparePassword("salah"))
	assert.False(t, admin.ComparePassword(""))
}
