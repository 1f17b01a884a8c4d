package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("super-secret")
	require.NoError(t, err)
	require.NotEqual(t, "super-secret", hash)

	require.NoError(t, ComparePassword(hash, "super-secret"))
	require.Error(t, ComparePassword(hash, "wrong"))
}
