package utils_test

import (
	"testing"

	"github.com/amirasaad/bankist/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPin(t *testing.T) {
	t.Parallel()
	hash, err := utils.HashPin("1111")
	require.NoError(t, err)
	assert.NotEqual(t, "1111", hash)
	assert.True(t, utils.CheckPinHash("1111", hash))
	assert.False(t, utils.CheckPinHash("2222", hash))
}
