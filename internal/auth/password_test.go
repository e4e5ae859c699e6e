package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port-russell/marina-service/internal/auth"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := auth.HashPassword("secret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.NoError(t, auth.ComparePassword(hash, "secret"))
	assert.Error(t, auth.ComparePassword(hash, "wrong"))
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := auth.HashPassword("secret", 0)
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(hash, "secret"))
}
