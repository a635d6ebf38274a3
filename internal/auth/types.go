package auth

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/store"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config holds auth options
type Config interface {
	GetSigningKey() string
	GetTokenExpiration() int
	GetIssuer() string
}

// UserFinder is the slice of the user directory the auth layer needs.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*store.User, error)
}

// TokenValidator validates raw bearer tokens into claims.
type TokenValidator interface {
	Validate(tokenString string) (*Claims, error)
}

type defLogger struct{}

func (d defLogger) Error(msg string, args ...any) {
	fmt.Println(logLine("[ERR] AUTH", msg, args))
}

func (d defLogger) Info(msg string, args ...any) {
	fmt.Println(logLine("[INF] AUTH", msg, args))
}

func (d defLogger) Debug(msg string, args ...any) {
	fmt.Println(logLine("[DBG] AUTH", msg, args))
}

// logLine joins the message with its key/value pairs so slog-style
// call sites stay readable on the fallback logger.
func logLine(prefix, msg string, args []any) string {
	parts := make([]string, 0, len(args)+2)
	parts = append(parts, prefix, msg)
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return strings.Join(parts, " ")
}
