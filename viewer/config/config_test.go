package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("BOUNDARY_MESSAGE", "")
	t.Setenv("BOUNDARY_PLACEMENT", "")
	t.Setenv("BOUNDARY_TITLE", "")

	assert.Equal(t, "ictf{Teeheehee_you_found_me}", Message())
	assert.Equal(t, "offscreen", PlacementName())
	assert.Equal(t, "Boundary Window", WindowTitle())
}

func TestOverrides(t *testing.T) {
	t.Setenv("BOUNDARY_MESSAGE", "hello_there")
	t.Setenv("BOUNDARY_PLACEMENT", "center")
	t.Setenv("BOUNDARY_TITLE", "my window")

	assert.Equal(t, "hello_there", Message())
	assert.Equal(t, "center", PlacementName())
	assert.Equal(t, "my window", WindowTitle())
}
