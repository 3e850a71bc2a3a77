package buildCFG

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("PORTAL_TEST_KEY", "from-env")
	assert.Equal(t, "from-env", envOr("PORTAL_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", envOr("PORTAL_TEST_KEY_UNSET", "fallback"))
}
