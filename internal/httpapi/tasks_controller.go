package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/internal/store"
)

// TasksController serves the task board routes. All of them sit behind
// RequireAuth; the caller is the resolved, active user.
type TasksController struct {
	Repo   store.RepositoryManager
	Logger Logger
}

// List handles GET /tasks
func (tc *TasksController) List(c *fiber.Ctx) error {
	tasks, err := tc.Repo.Tasks().List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(tasks)
}

// My handles GET /tasks/my
func (tc *TasksController) My(c *fiber.Ctx) error {
	tasks, err := tc.Repo.Tasks().ListByAssignee(c.UserContext(), callerFromCtx(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(tasks)
}

// Get handles GET /tasks/:id
func (tc *TasksController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(err, "invalid task id")
	}

	task, err := tc.Repo.Tasks().GetByID(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(task)
}

// Create handles POST /tasks. The creator is always the caller; it is
// not a settable field.
func (tc *TasksController) Create(c *fiber.Ctx) error {
	payload := new(CreateTaskRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(err, "unable to parse task payload")
	}

	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	task, err := tc.Repo.Tasks().Create(c.UserContext(), &store.Task{
		Title:       payload.Title,
		Description: payload.Description,
		AssigneeID:  payload.AssigneeID,
		CreatorID:   callerFromCtx(c).ID,
	})
	if err != nil {
		return err
	}

	tc.Logger.Info("task created", "task_id", task.ID, "creator_id", task.CreatorID)

	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update handles PATCH /tasks/:id
func (tc *TasksController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(err, "invalid task id")
	}

	payload := new(UpdateTaskRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(err, "unable to parse task payload")
	}

	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	task, err := tc.Repo.Tasks().Update(c.UserContext(), int64(id), store.TaskUpdate{
		Title:       payload.Title,
		Description: payload.Description,
		AssigneeID:  payload.AssigneeID,
		IsComplete:  payload.IsComplete,
	})
	if err != nil {
		return err
	}

	return c.JSON(task)
}

// Delete handles DELETE /tasks/:id
func (tc *TasksController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(err, "invalid task id")
	}

	if err := tc.Repo.Tasks().Delete(c.UserContext(), int64(id)); err != nil {
		return err
	}

	tc.Logger.Info("task deleted", "task_id", id, "actor_id", callerFromCtx(c).ID)

	return c.JSON(MessageResponse{Message: "Successfully deleted"})
}
