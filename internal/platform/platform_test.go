package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModKeyLabel(t *testing.T) {
	assert.Equal(t, "⌘", modKeyFor("darwin"))
	assert.Equal(t, "Ctrl", modKeyFor("linux"))
	assert.Equal(t, "Ctrl", modKeyFor("windows"))
}
