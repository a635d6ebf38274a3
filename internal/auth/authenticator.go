package auth

import (
	"context"

	"github.com/goliatone/go-errors"

	"taskboard/internal/store"
)

// Auther verifies credentials and mints tokens.
type Auther struct {
	users        UserFinder
	tokenService *TokenService
	logger       Logger
}

// NewAuthenticator returns a new Auther backed by the user directory.
func NewAuthenticator(users UserFinder, cfg Config) *Auther {
	return &Auther{
		users: users,
		tokenService: NewTokenService(
			[]byte(cfg.GetSigningKey()),
			cfg.GetTokenExpiration(),
			cfg.GetIssuer(),
			defLogger{},
		),
		logger: defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	s.tokenService.logger = logger
	return s
}

// TokenService returns the TokenService instance used by this Auther.
func (s *Auther) TokenService() *TokenService {
	return s.tokenService
}

// Login verifies the email/password pair and returns a signed token.
// Unknown accounts and wrong passwords fail identically; deactivated
// accounts are rejected even with correct credentials.
func (s *Auther) Login(ctx context.Context, identifier, password string) (string, error) {
	user, err := s.verifyIdentity(ctx, identifier, password)
	if err != nil {
		return "", err
	}

	return s.tokenService.Generate(user)
}

// AdminLogin behaves like Login but additionally rejects accounts
// without the admin flag. The failure is a credential error, not a
// policy one: the caller never got a token to be forbidden with.
func (s *Auther) AdminLogin(ctx context.Context, identifier, password string) (string, error) {
	user, err := s.verifyIdentity(ctx, identifier, password)
	if err != nil {
		return "", err
	}

	if !user.IsAdmin {
		s.logger.Info("AdminLogin rejected non-admin account", "email", identifier)
		return "", ErrNotAnAdmin
	}

	return s.tokenService.Generate(user)
}

func (s *Auther) verifyIdentity(ctx context.Context, identifier, password string) (*store.User, error) {
	user, err := s.users.GetByEmail(ctx, identifier)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrMismatchedHashAndPassword
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		s.logger.Info("Login verify identity error", "email", identifier)
		return nil, ErrMismatchedHashAndPassword
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	return user, nil
}
