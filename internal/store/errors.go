package store

import (
	"github.com/goliatone/go-errors"
)

const (
	TextCodeUserNotFound     = "USER_NOT_FOUND"
	TextCodeTaskNotFound     = "TASK_NOT_FOUND"
	TextCodeAssigneeNotFound = "ASSIGNEE_NOT_FOUND"
	TextCodeEmailTaken       = "EMAIL_ALREADY_REGISTERED"
)

// ErrUserNotFound is returned when a user lookup misses.
var ErrUserNotFound = errors.New("user not found", errors.CategoryNotFound).
	WithTextCode(TextCodeUserNotFound).
	WithCode(errors.CodeNotFound)

// ErrTaskNotFound is returned when a task lookup misses.
var ErrTaskNotFound = errors.New("task not found", errors.CategoryNotFound).
	WithTextCode(TextCodeTaskNotFound).
	WithCode(errors.CodeNotFound)

// ErrAssigneeNotFound is returned when a task references a user that
// does not exist. The task write is rolled back.
var ErrAssigneeNotFound = errors.New("assignee not found", errors.CategoryNotFound).
	WithTextCode(TextCodeAssigneeNotFound).
	WithCode(errors.CodeNotFound)

// ErrEmailTaken is returned when registering an email that already has
// an account. Raised by the pre-insert lookup and again if the unique
// constraint fires, so concurrent registrations surface the same error.
var ErrEmailTaken = errors.New("email already registered", errors.CategoryConflict).
	WithTextCode(TextCodeEmailTaken).
	WithCode(errors.CodeConflict)
