package httpapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"taskboard/internal/auth"
	"taskboard/internal/store"
)

// UsersController serves registration, login, and directory routes.
type UsersController struct {
	Repo   store.RepositoryManager
	Auther *auth.Auther
	Logger Logger
}

// Register handles POST /users/register
func (uc *UsersController) Register(c *fiber.Ctx) error {
	return uc.register(c, false)
}

// RegisterAdmin handles POST /users/register/admin
func (uc *UsersController) RegisterAdmin(c *fiber.Ctx) error {
	return uc.register(c, true)
}

func (uc *UsersController) register(c *fiber.Ctx, isAdmin bool) error {
	payload := new(RegisterUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(err, "unable to parse registration payload")
	}

	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return err
	}

	user, err := uc.Repo.Users().Register(c.UserContext(), &store.User{
		Email:        payload.Email,
		PasswordHash: hash,
		Name:         payload.Name,
		IsAdmin:      isAdmin,
		IsActive:     true,
	})
	if err != nil {
		return err
	}

	uc.Logger.Info("user registered", "email", user.Email, "is_admin", isAdmin)

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /users/login
func (uc *UsersController) Login(c *fiber.Ctx) error {
	return uc.login(c, false)
}

// AdminLogin handles POST /users/admin/login
func (uc *UsersController) AdminLogin(c *fiber.Ctx) error {
	return uc.login(c, true)
}

func (uc *UsersController) login(c *fiber.Ctx, adminOnly bool) error {
	payload := new(LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(err, "unable to parse login payload")
	}

	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	var token string
	var err error
	if adminOnly {
		token, err = uc.Auther.AdminLogin(c.UserContext(), payload.GetIdentifier(), payload.GetPassword())
	} else {
		token, err = uc.Auther.Login(c.UserContext(), payload.GetIdentifier(), payload.GetPassword())
	}
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me handles GET /users/me
func (uc *UsersController) Me(c *fiber.Ctx) error {
	return c.JSON(callerFromCtx(c))
}

// UpdateMe handles PATCH /users/me
func (uc *UsersController) UpdateMe(c *fiber.Ctx) error {
	payload := new(UpdateUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(err, "unable to parse profile payload")
	}

	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	user, err := uc.Repo.Users().UpdateName(c.UserContext(), callerFromCtx(c).ID, payload.Name)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// ListActive handles GET /users/all/active
func (uc *UsersController) ListActive(c *fiber.Ctx) error {
	return uc.list(c, true)
}

// ListAll handles GET /users/all
func (uc *UsersController) ListAll(c *fiber.Ctx) error {
	return uc.list(c, false)
}

func (uc *UsersController) list(c *fiber.Ctx, onlyActive bool) error {
	users, err := uc.Repo.Users().List(c.UserContext(), onlyActive)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Activate handles PATCH /users/activate/:id
func (uc *UsersController) Activate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(err, "invalid user id")
	}

	if _, err := uc.Repo.Users().Activate(c.UserContext(), int64(id)); err != nil {
		return err
	}

	return c.JSON(MessageResponse{
		Message: fmt.Sprintf("User with id: %d -> activated", id),
	})
}

// Deactivate handles PATCH /users/deactivate/:id
func (uc *UsersController) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(err, "invalid user id")
	}

	if _, err := uc.Repo.Users().Deactivate(c.UserContext(), int64(id)); err != nil {
		return err
	}

	uc.Logger.Info("user deactivated", "user_id", id, "actor_id", callerFromCtx(c).ID)

	return c.JSON(MessageResponse{
		Message: fmt.Sprintf("User with id: %d -> deactivated", id),
	})
}
