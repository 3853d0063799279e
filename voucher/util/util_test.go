package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOrNotSet(t *testing.T) {
	t.Setenv("SWIGGY_TID", "abc")
	assert.Equal(t, "abc", EnvOrNotSet("SWIGGY_TID"))
	assert.Equal(t, "NOT SET", EnvOrNotSet("SWIGGY_SURELY_MISSING_VARIABLE"))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "69e4d984...", Mask("69e4d984-9765-47af"))
	assert.Equal(t, "***", Mask("12345678"))
	assert.Equal(t, "***", Mask(""))
}
