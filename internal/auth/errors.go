package auth

import (
	"github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidCreds       = "INVALID_CREDENTIALS"
	TextCodeTokenExpired       = "TOKEN_EXPIRED"
	TextCodeTokenMalformed     = "TOKEN_MALFORMED"
	TextCodeAccountDeactivated = "ACCOUNT_DEACTIVATED"
	TextCodeAdminRequired      = "ADMIN_REQUIRED"
	TextCodeNotAnAdmin         = "NOT_AN_ADMIN"
)

// ErrNoEmptyString rejects empty plaintext passwords before hashing.
var ErrNoEmptyString = errors.New("value must not be empty", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest)

// ErrMismatchedHashAndPassword is the single error for every failed
// credential check, so callers cannot tell a wrong password from an
// unknown account.
var ErrMismatchedHashAndPassword = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrIdentityNotFound is returned when a token's subject no longer
// resolves to a user record.
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned for tokens past their expiration claim.
var ErrTokenExpired = errors.New("authentication token has expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed covers bad signatures, unexpected algorithms, and
// unparseable or incomplete payloads.
var ErrTokenMalformed = errors.New("authentication token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrAccountDeactivated is returned when the caller's account is
// inactive, regardless of token validity.
var ErrAccountDeactivated = errors.New("user account is deactivated", errors.CategoryAuth).
	WithTextCode(TextCodeAccountDeactivated).
	WithCode(errors.CodeUnauthorized)

// ErrAdminRequired gates admin-only operations.
var ErrAdminRequired = errors.New("admin access required", errors.CategoryAuthz).
	WithTextCode(TextCodeAdminRequired).
	WithCode(errors.CodeForbidden)

// ErrNotAnAdmin rejects admin logins from regular accounts. Unlike
// ErrAdminRequired this is a credential failure, not a policy one.
var ErrNotAnAdmin = errors.New("user is not an administrator", errors.CategoryAuth).
	WithTextCode(TextCodeNotAnAdmin).
	WithCode(errors.CodeUnauthorized)
