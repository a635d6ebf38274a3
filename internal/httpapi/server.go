package httpapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"taskboard/internal/auth"
	"taskboard/internal/store"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type defLogger struct{}

func (d defLogger) Error(msg string, args ...any) {
	fmt.Println(logLine("[ERR] HTTP", msg, args))
}

func (d defLogger) Info(msg string, args ...any) {
	fmt.Println(logLine("[INF] HTTP", msg, args))
}

func (d defLogger) Debug(msg string, args ...any) {
	fmt.Println(logLine("[DBG] HTTP", msg, args))
}

func logLine(prefix, msg string, args []any) string {
	parts := make([]string, 0, len(args)+2)
	parts = append(parts, prefix, msg)
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return strings.Join(parts, " ")
}

// Server wires the controllers, middleware, and routes into a fiber
// app.
type Server struct {
	app    *fiber.App
	repo   store.RepositoryManager
	auther *auth.Auther
	gate   *auth.AccessGate
	logger Logger
}

// Option mutates the server during construction.
type Option func(*Server)

// WithLogger overrides the default stdout logger.
func WithLogger(logger Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds the HTTP server over the given repositories and auth
// collaborators.
func New(repo store.RepositoryManager, auther *auth.Auther, gate *auth.AccessGate, opts ...Option) *Server {
	s := &Server{
		repo:   repo,
		auther: auther,
		gate:   gate,
		logger: defLogger{},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "taskboard",
		ErrorHandler: newErrorHandler(s.logger),
	})

	s.app.Use(recover.New())
	s.app.Use(cors.New())

	s.registerRoutes()

	return s
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// ShutdownWithContext drains in-flight requests until ctx expires.
func (s *Server) ShutdownWithContext(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) registerRoutes() {
	protected := RequireAuth(s.gate)
	adminOnly := RequireAdmin(s.gate)

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(true)
	})

	uc := &UsersController{Repo: s.repo, Auther: s.auther, Logger: s.logger}
	users := s.app.Group("/users")
	users.Post("/register", uc.Register)
	users.Post("/register/admin", uc.RegisterAdmin)
	users.Post("/login", uc.Login)
	users.Post("/admin/login", uc.AdminLogin)
	users.Get("/me", protected, uc.Me)
	users.Patch("/me", protected, uc.UpdateMe)
	users.Get("/all/active", protected, uc.ListActive)
	users.Get("/all", protected, uc.ListAll)
	users.Patch("/activate/:id", protected, adminOnly, uc.Activate)
	users.Patch("/deactivate/:id", protected, adminOnly, uc.Deactivate)

	tc := &TasksController{Repo: s.repo, Logger: s.logger}
	tasks := s.app.Group("/tasks", protected)
	tasks.Get("/", tc.List)
	tasks.Get("/my", tc.My)
	tasks.Get("/:id", tc.Get)
	tasks.Post("/", tc.Create)
	tasks.Patch("/:id", tc.Update)
	tasks.Delete("/:id", tc.Delete)
}
