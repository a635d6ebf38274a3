package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"taskboard/internal/store"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	db, err := store.Connect("sqlite", "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, store.CreateSchema(context.Background(), db))

	return db
}

func seedUser(t *testing.T, users store.Users, email string) *store.User {
	t.Helper()

	user, err := users.Register(context.Background(), &store.User{
		Email:        email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		Name:         "Seed User",
		IsActive:     true,
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	return user
}
