package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id := NewID("temp-")

	assert.True(t, strings.HasPrefix(id, "temp-"))
	assert.Len(t, id, len("temp-")+idLength)
	assert.NotEqual(t, id, NewID("temp-"))
}
