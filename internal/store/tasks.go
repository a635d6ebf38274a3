package store

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// UnassignTaskSentinel is the reserved assignee id that clears a
// task's assignee on update instead of pointing at a user.
const UnassignTaskSentinel int64 = -1

// TaskUpdate carries the fields of a partial task update. Nil fields
// are left untouched; this is PATCH semantics, not PUT.
type TaskUpdate struct {
	Title       *string
	Description *string
	AssigneeID  *int64
	IsComplete  *bool
}

// Tasks is the task board: CRUD with assignee referential checks.
type Tasks interface {
	Create(ctx context.Context, task *Task) (*Task, error)
	GetByID(ctx context.Context, id int64) (*Task, error)
	List(ctx context.Context) ([]*Task, error)
	ListByAssignee(ctx context.Context, userID int64) ([]*Task, error)
	Update(ctx context.Context, id int64, update TaskUpdate) (*Task, error)
	Delete(ctx context.Context, id int64) error
}

type tasks struct {
	db *bun.DB
}

var _ Tasks = (*tasks)(nil)

// NewTasksRepository returns the bun-backed Tasks implementation.
func NewTasksRepository(db *bun.DB) Tasks {
	return &tasks{db: db}
}

// Create persists a task. When an assignee is set it must reference an
// existing user; the check and the insert share one transaction so a
// failed check leaves nothing behind.
func (r *tasks) Create(ctx context.Context, task *Task) (*Task, error) {
	task.IsComplete = false

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if task.AssigneeID != nil {
			if err := assigneeExists(ctx, tx, *task.AssigneeID); err != nil {
				return err
			}
		}

		if _, err := tx.NewInsert().Model(task).Exec(ctx); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to insert task")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, task.ID)
}

// GetByID loads a task with its assignee resolved.
func (r *tasks) GetByID(ctx context.Context, id int64) (*Task, error) {
	task := &Task{}
	err := r.db.NewSelect().
		Model(task).
		Relation("Assignee").
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load task")
	}
	return task, nil
}

func (r *tasks) List(ctx context.Context) ([]*Task, error) {
	var records []*Task
	err := r.db.NewSelect().
		Model(&records).
		Relation("Assignee").
		OrderExpr("?TableAlias.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list tasks")
	}
	return records, nil
}

func (r *tasks) ListByAssignee(ctx context.Context, userID int64) ([]*Task, error) {
	var records []*Task
	err := r.db.NewSelect().
		Model(&records).
		Relation("Assignee").
		Where("?TableAlias.assignee_id = ?", userID).
		OrderExpr("?TableAlias.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list tasks for assignee")
	}
	return records, nil
}

// Update applies a partial update. An AssigneeID equal to
// UnassignTaskSentinel clears the assignee; any other value must
// resolve to an existing user or the task is left unmodified.
func (r *tasks) Update(ctx context.Context, id int64, update TaskUpdate) (*Task, error) {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		task := &Task{}
		err := tx.NewSelect().
			Model(task).
			Where("?TableAlias.id = ?", id).
			Limit(1).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTaskNotFound
			}
			return errors.Wrap(err, errors.CategoryInternal, "failed to load task for update")
		}

		if update.Title != nil {
			task.Title = *update.Title
		}
		if update.Description != nil {
			task.Description = *update.Description
		}
		if update.IsComplete != nil {
			task.IsComplete = *update.IsComplete
		}
		if update.AssigneeID != nil {
			if *update.AssigneeID == UnassignTaskSentinel {
				task.AssigneeID = nil
			} else {
				if err := assigneeExists(ctx, tx, *update.AssigneeID); err != nil {
					return err
				}
				assignee := *update.AssigneeID
				task.AssigneeID = &assignee
			}
		}

		_, err = tx.NewUpdate().
			Model(task).
			Column("title", "description", "is_complete", "assignee_id").
			WherePK().
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to update task")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes a task permanently.
func (r *tasks) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*Task)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete task")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to read delete result")
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func assigneeExists(ctx context.Context, tx bun.IDB, id int64) error {
	exists, err := tx.NewSelect().
		Model((*User)(nil)).
		Where("?TableAlias.id = ?", id).
		Exists(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to check assignee")
	}
	if !exists {
		return ErrAssigneeNotFound.WithMetadata(map[string]any{
			"assignee_id": id,
		})
	}
	return nil
}
