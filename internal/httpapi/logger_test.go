package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLine(t *testing.T) {
	line := logLine("[DBG] HTTP", "request failed", []any{"path", "/tasks", "status", 404})
	assert.Equal(t, "[DBG] HTTP request failed path /tasks status 404", line)
	assert.NotContains(t, line, "%!")
}
