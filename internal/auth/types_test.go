package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLine(t *testing.T) {
	line := logLine("[INF] AUTH", "login rejected", []any{"email", "bob@example.com", "attempts", 3})
	assert.Equal(t, "[INF] AUTH login rejected email bob@example.com attempts 3", line)

	line = logLine("[ERR] AUTH", "no pairs", nil)
	assert.Equal(t, "[ERR] AUTH no pairs", line)
	assert.NotContains(t, line, "%!")
}
