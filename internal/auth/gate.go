package auth

import (
	"context"

	"github.com/goliatone/go-errors"

	"taskboard/internal/store"
)

// AccessGate resolves bearer tokens to live user records. Every call
// re-reads the user so a deactivation takes effect on the very next
// request, even while the token itself is still unexpired.
type AccessGate struct {
	tokens TokenValidator
	users  UserFinder
	logger Logger
}

// NewAccessGate returns a gate over the given validator and directory.
func NewAccessGate(tokens TokenValidator, users UserFinder) *AccessGate {
	return &AccessGate{
		tokens: tokens,
		users:  users,
		logger: defLogger{},
	}
}

func (g *AccessGate) WithLogger(logger Logger) *AccessGate {
	g.logger = logger
	return g
}

// ResolveCaller validates the raw token, loads the subject's current
// record, and enforces the active-account policy.
func (g *AccessGate) ResolveCaller(ctx context.Context, raw string) (*store.User, error) {
	claims, err := g.tokens.Validate(raw)
	if err != nil {
		return nil, err
	}

	if claims.Subject() == "" {
		return nil, ErrTokenMalformed
	}

	user, err := g.users.GetByEmail(ctx, claims.Subject())
	if err != nil {
		if errors.IsNotFound(err) {
			g.logger.Info("ResolveCaller token subject has no user record", "subject", claims.Subject())
			return nil, ErrIdentityNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to resolve token subject")
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	return user, nil
}

// RequireAdmin enforces the admin policy on an already-resolved caller.
func (g *AccessGate) RequireAdmin(user *store.User) error {
	if user == nil || !user.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}
