package router

import (
	"errors"
	"time"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/bookshelf-server/internal/api/http/handler"
	"github.com/dtroode/bookshelf-server/internal/api/http/middleware"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// AuthService logs users in and out and resolves the current session.
type AuthService interface {
	handler.AuthService
	middleware.Authenticator
}

// Options tunes the fiber application.
type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Router wires handlers and middleware into a fiber application.
type Router struct {
	userService    handler.UserService
	bookService    handler.BookService
	authService    AuthService
	sessions       handler.SessionProvider
	contextManager model.ContextManager
	pinger         model.Pinger
	logger         *logger.Logger
	opts           Options
}

// New creates new HTTP Router instance.
func New(
	userService handler.UserService,
	bookService handler.BookService,
	authService AuthService,
	sessions handler.SessionProvider,
	contextManager model.ContextManager,
	pinger model.Pinger,
	logger *logger.Logger,
	opts Options,
) *Router {
	return &Router{
		userService:    userService,
		bookService:    bookService,
		authService:    authService,
		sessions:       sessions,
		contextManager: contextManager,
		pinger:         pinger,
		logger:         logger,
		opts:           opts,
	}
}

// Register builds the application with every route and middleware.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "bookshelf-server",
		ReadTimeout:           r.opts.ReadTimeout,
		WriteTimeout:          r.opts.WriteTimeout,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessions, r.authService, r.contextManager, r.logger)

	app.Use(otelfiber.Middleware())
	app.Use(logging.Handle)
	app.Use(middleware.Metrics)
	app.Use(recover.New())

	r.registerOpsRoutes(app)
	r.registerAuthRoutes(app)
	r.registerUserRoutes(app, authenticate.Handle)
	r.registerBookRoutes(app, authenticate.Handle)

	return app
}

func (r *Router) registerOpsRoutes(app *fiber.App) {
	health := handler.NewHealth(r.pinger, r.logger)
	app.Get("/health", health.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (r *Router) registerAuthRoutes(app *fiber.App) {
	auth := handler.NewAuth(r.authService, r.sessions, r.logger)
	app.Post("/login", auth.Login)
	app.Get("/logout", auth.Logout)
}

func (r *Router) registerUserRoutes(app *fiber.App, authenticate fiber.Handler) {
	users := handler.NewUser(r.userService, r.contextManager, r.logger)
	g := app.Group("/users")
	g.Get("/", users.List)
	g.Post("/", users.Create)
	g.Get("/:id", authenticate, users.Get)
	g.Put("/:id", authenticate, users.Update)
	g.Delete("/:id", users.Delete)
}

func (r *Router) registerBookRoutes(app *fiber.App, authenticate fiber.Handler) {
	books := handler.NewBook(r.bookService, r.contextManager, r.logger)
	g := app.Group("/books", authenticate)
	g.Get("/", books.List)
	g.Post("/", books.Create)
	g.Get("/:id", books.Get)
	g.Put("/:id", books.Replace)
	g.Delete("/:id", books.Delete)
}

// errorHandler renders errors that escaped the handlers, such as unknown
// routes and recovered panics.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "An error occurred"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		msg = e.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
