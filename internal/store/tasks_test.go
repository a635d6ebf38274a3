package store_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/store"
)

func ptr[T any](v T) *T { return &v }

func TestTasks_Create(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUsersRepository(db)
	tasks := store.NewTasksRepository(db)
	ctx := context.Background()

	creator := seedUser(t, users, "creator@example.com")
	assignee := seedUser(t, users, "assignee@example.com")

	t.Run("unassigned task", func(t *testing.T) {
		task, err := tasks.Create(ctx, &store.Task{
			Title:       "Write the report",
			Description: "Quarterly numbers",
			CreatorID:   creator.ID,
		})
		require.NoError(t, err)
		assert.NotZero(t, task.ID)
		assert.False(t, task.IsComplete)
		assert.Nil(t, task.AssigneeID)
		assert.Nil(t, task.Assignee)
	})

	t.Run("assigned task resolves its assignee", func(t *testing.T) {
		task, err := tasks.Create(ctx, &store.Task{
			Title:      "Review the report",
			CreatorID:  creator.ID,
			AssigneeID: &assignee.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, task.AssigneeID)
		assert.Equal(t, assignee.ID, *task.AssigneeID)
		require.NotNil(t, task.Assignee)
		assert.Equal(t, "assignee@example.com", task.Assignee.Email)
	})

	t.Run("unknown assignee fails and persists nothing", func(t *testing.T) {
		before, err := tasks.List(ctx)
		require.NoError(t, err)

		_, err = tasks.Create(ctx, &store.Task{
			Title:      "Orphaned",
			CreatorID:  creator.ID,
			AssigneeID: ptr(int64(99999)),
		})
		require.Error(t, err)
		assert.True(t, goerrors.IsNotFound(err))

		after, err := tasks.List(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("new tasks start incomplete regardless of input", func(t *testing.T) {
		task, err := tasks.Create(ctx, &store.Task{
			Title:      "Sneaky",
			CreatorID:  creator.ID,
			IsComplete: true,
		})
		require.NoError(t, err)
		assert.False(t, task.IsComplete)
	})
}

func TestTasks_GetByID(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUsersRepository(db)
	tasks := store.NewTasksRepository(db)
	ctx := context.Background()

	creator := seedUser(t, users, "creator@example.com")

	created, err := tasks.Create(ctx, &store.Task{
		Title:     "Find me",
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	loaded, err := tasks.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Find me", loaded.Title)

	_, err = tasks.GetByID(ctx, created.ID+999)
	assert.Equal(t, store.ErrTaskNotFound, err)
}

func TestTasks_List(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUsersRepository(db)
	tasks := store.NewTasksRepository(db)
	ctx := context.Background()

	creator := seedUser(t, users, "creator@example.com")
	assignee := seedUser(t, users, "assignee@example.com")

	// A mix of assigned and unassigned rows exercises the assignee
	// join alongside the id ordering.
	var ids []int64
	for _, spec := range []struct {
		title    string
		assignee *int64
	}{
		{"first", &assignee.ID},
		{"second", nil},
		{"third", &assignee.ID},
	} {
		task, err := tasks.Create(ctx, &store.Task{
			Title:      spec.title,
			CreatorID:  creator.ID,
			AssigneeID: spec.assignee,
		})
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	all, err := tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, task := range all {
		assert.Equal(t, ids[i], task.ID)
	}
	require.NotNil(t, all[0].Assignee)
	assert.Equal(t, "assignee@example.com", all[0].Assignee.Email)
	assert.Nil(t, all[1].Assignee)
}

func TestTasks_ListByAssignee(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUsersRepository(db)
	tasks := store.NewTasksRepository(db)
	ctx := context.Background()

	creator := seedUser(t, users, "creator@example.com")
	alice := seedUser(t, users, "alice@example.com")
	bob := seedUser(t, users, "bob@example.com")

	for _, spec := range []struct {
		title    string
		assignee *int64
	}{
		{"for alice", &alice.ID},
		{"for bob", &bob.ID},
		{"also for alice", &alice.ID},
		{"for nobody", nil},
	} {
		_, err := tasks.Create(ctx, &store.Task{
			Title:      spec.title,
			CreatorID:  creator.ID,
			AssigneeID: spec.assignee,
		})
		require.NoError(t, err)
	}

	mine, err := tasks.ListByAssignee(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "for alice", mine[0].Title)
	assert.Equal(t, "also for alice", mine[1].Title)

	none, err := tasks.ListByAssignee(ctx, 99999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTasks_Update(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUsersRepository(db)
	tasks := store.NewTasksRepository(db)
	ctx := context.Background()

	creator := seedUser(t, users, "creator@example.com")
	assignee := seedUser(t, users, "assignee@example.com")

	newTask := func(t *testing.T) *store.Task {
		t.Helper()
		task, err := tasks.Create(ctx, &store.Task{
			Title:       "Original title",
			Description: "Original description",
			CreatorID:   creator.ID,
			AssigneeID:  &assignee.ID,
		})
		require.NoError(t, err)
		return task
	}

	t.Run("partial update leaves absent fields untouched", func(t *testing.T) {
		task := newTask(t)

		updated, err := tasks.Update(ctx, task.ID, store.TaskUpdate{
			Title: ptr("New title"),
		})
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "Original description", updated.Description)
		assert.False(t, updated.IsComplete)
		require.NotNil(t, updated.AssigneeID)
		assert.Equal(t, assignee.ID, *updated.AssigneeID)
	})

	t.Run("completion flag", func(t *testing.T) {
		task := newTask(t)

		updated, err := tasks.Update(ctx, task.ID, store.TaskUpdate{
			IsComplete: ptr(true),
		})
		require.NoError(t, err)
		assert.True(t, updated.IsComplete)
	})

	t.Run("sentinel clears the assignee", func(t *testing.T) {
		task := newTask(t)

		updated, err := tasks.Update(ctx, task.ID, store.TaskUpdate{
			AssigneeID: ptr(store.UnassignTaskSentinel),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.AssigneeID)
		assert.Nil(t, updated.Assignee)

		// Clearing an already-clear assignee is a no-op.
		updated, err = tasks.Update(ctx, task.ID, store.TaskUpdate{
			AssigneeID: ptr(store.UnassignTaskSentinel),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.AssigneeID)
	})

	t.Run("reassignment", func(t *testing.T) {
		task := newTask(t)
		other := seedUser(t, users, "other@example.com")

		updated, err := tasks.Update(ctx, task.ID, store.TaskUpdate{
			AssigneeID: &other.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.AssigneeID)
		assert.Equal(t, other.ID, *updated.AssigneeID)
		require.NotNil(t, updated.Assignee)
		assert.Equal(t, "other@example.com", updated.Assignee.Email)
	})

	t.Run("unknown assignee leaves the task unchanged", func(t *testing.T) {
		task := newTask(t)

		_, err := tasks.Update(ctx, task.ID, store.TaskUpdate{
			Title:      ptr("Should not stick"),
			AssigneeID: ptr(int64(99999)),
		})
		require.Error(t, err)
		assert.True(t, goerrors.IsNotFound(err))

		loaded, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Original title", loaded.Title)
		require.NotNil(t, loaded.AssigneeID)
		assert.Equal(t, assignee.ID, *loaded.AssigneeID)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := tasks.Update(ctx, 99999, store.TaskUpdate{
			Title: ptr("nope"),
		})
		assert.Equal(t, store.ErrTaskNotFound, err)
	})
}

func TestTasks_Delete(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUsersRepository(db)
	tasks := store.NewTasksRepository(db)
	ctx := context.Background()

	creator := seedUser(t, users, "creator@example.com")

	task, err := tasks.Create(ctx, &store.Task{
		Title:     "Short lived",
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	require.NoError(t, tasks.Delete(ctx, task.ID))

	_, err = tasks.GetByID(ctx, task.ID)
	assert.Equal(t, store.ErrTaskNotFound, err)

	assert.Equal(t, store.ErrTaskNotFound, tasks.Delete(ctx, task.ID))
}
