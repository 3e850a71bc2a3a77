package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", h)
	assert.True(t, Verify("secret", h))
	assert.False(t, Verify("wrong", h))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("secret")
	require.NoError(t, err)
	h2, err := Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("secret", "not-a-bcrypt-hash"))
	assert.False(t, Verify("secret", ""))
}
