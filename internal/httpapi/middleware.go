package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"taskboard/internal/auth"
	"taskboard/internal/store"
)

const callerLocalKey = "taskboard.caller"

// RequireAuth resolves the bearer token to a live user record and
// stores it for downstream handlers. The gate re-reads the account on
// every request; there is deliberately no caching here.
func RequireAuth(gate *auth.AccessGate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := tokenFromHeader(c)
		if err != nil {
			return err
		}

		caller, err := gate.ResolveCaller(c.UserContext(), raw)
		if err != nil {
			return err
		}

		c.Locals(callerLocalKey, caller)
		c.SetUserContext(auth.WithCaller(c.UserContext(), caller))

		return c.Next()
	}
}

// RequireAdmin enforces the admin policy on the resolved caller. It
// must run after RequireAuth.
func RequireAdmin(gate *auth.AccessGate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := gate.RequireAdmin(callerFromCtx(c)); err != nil {
			return err
		}
		return c.Next()
	}
}

func tokenFromHeader(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrBadAuthHeader
	}

	return parts[1], nil
}

func callerFromCtx(c *fiber.Ctx) *store.User {
	caller, _ := c.Locals(callerLocalKey).(*store.User)
	return caller
}
