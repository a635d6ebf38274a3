package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Users is the user directory: registration, lookups, listing, and the
// active/inactive lifecycle transitions.
type Users interface {
	Register(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context, onlyActive bool) ([]*User, error)
	Activate(ctx context.Context, id int64) (*User, error)
	Deactivate(ctx context.Context, id int64) (*User, error)
	UpdateName(ctx context.Context, id int64, name string) (*User, error)
}

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

// NewUsersRepository returns the bun-backed Users implementation.
func NewUsersRepository(db *bun.DB) Users {
	return &users{db: db}
}

// Register persists a new user. The email is checked before the insert
// so the common case surfaces ErrEmailTaken without touching the
// constraint; a concurrent insert that slips past the check trips the
// UNIQUE index and maps to the same error.
func (r *users) Register(ctx context.Context, user *User) (*User, error) {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		taken, err := tx.NewSelect().
			Model((*User)(nil)).
			Where("?TableAlias.email = ?", user.Email).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to check email availability")
		}
		if taken {
			return ErrEmailTaken
		}

		if _, err := tx.NewInsert().Model(user).Exec(ctx); err != nil {
			if isUniqueViolation(err) {
				return ErrEmailTaken
			}
			return errors.Wrap(err, errors.CategoryInternal, "failed to insert user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *users) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getBy(ctx, "?TableAlias.email = ?", email)
}

func (r *users) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.getBy(ctx, "?TableAlias.id = ?", id)
}

func (r *users) getBy(ctx context.Context, where string, arg any) (*User, error) {
	user := &User{}
	err := r.db.NewSelect().
		Model(user).
		Where(where, arg).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load user")
	}
	return user, nil
}

// List returns users in primary-key order. With onlyActive set the
// result is restricted to accounts that have not been deactivated.
func (r *users) List(ctx context.Context, onlyActive bool) ([]*User, error) {
	var records []*User

	q := r.db.NewSelect().
		Model(&records).
		Order("id ASC")

	if onlyActive {
		q = q.Where("?TableAlias.is_active = ?", true)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list users")
	}

	return records, nil
}

// Activate moves a user to the active state. Already-active users are
// left untouched and returned as-is.
func (r *users) Activate(ctx context.Context, id int64) (*User, error) {
	return r.setActive(ctx, id, true)
}

// Deactivate moves a user to the inactive state. Already-inactive
// users are left untouched and returned as-is.
func (r *users) Deactivate(ctx context.Context, id int64) (*User, error) {
	return r.setActive(ctx, id, false)
}

func (r *users) setActive(ctx context.Context, id int64, active bool) (*User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Self-loop transition: no write when already in the target state.
	if user.IsActive == active {
		return user, nil
	}

	user.IsActive = active
	_, err = r.db.NewUpdate().
		Model(user).
		Column("is_active").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update user state")
	}

	return user, nil
}

func (r *users) UpdateName(ctx context.Context, id int64, name string) (*User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	_, err = r.db.NewUpdate().
		Model(user).
		Column("name").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update user name")
	}

	return user, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
