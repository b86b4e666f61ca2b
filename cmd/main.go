package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/bookshelf-server/database"
	grpcrouter "github.com/dtroode/bookshelf-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/bookshelf-server/internal/api/grpc/server"
	httpcontext "github.com/dtroode/bookshelf-server/internal/api/http/context"
	httprouter "github.com/dtroode/bookshelf-server/internal/api/http/router"
	httpserver "github.com/dtroode/bookshelf-server/internal/api/http/server"
	"github.com/dtroode/bookshelf-server/internal/api/http/session"
	"github.com/dtroode/bookshelf-server/internal/config"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/dtroode/bookshelf-server/internal/password"
	"github.com/dtroode/bookshelf-server/internal/repository/postgres"
	"github.com/dtroode/bookshelf-server/internal/repository/redis"
	"github.com/dtroode/bookshelf-server/internal/server"
	"github.com/dtroode/bookshelf-server/internal/service"
	"github.com/dtroode/bookshelf-server/internal/tracing"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	shutdownTracer, err := tracing.InitTracerProvider(ctx, cfg.Telemetry, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", "error", err)
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database.ConnString(), postgres.Options{
		MaxConns:         cfg.Database.MaxConns,
		ConnectTimeout:   cfg.Database.ConnectTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer conn.Close()

	if err := database.Migrate(ctx, conn.DB().DB); err != nil {
		logger.Fatal("failed to apply migrations", "error", err)
	}

	gateway := postgres.NewGateway(conn.DB(), postgres.DefaultTables()...)
	hasher := password.NewHasher(cfg.Bcrypt.Cost)

	userService := service.NewUser(gateway, hasher, logger)
	bookService := service.NewBook(gateway, logger)
	authService := service.NewAuth(gateway, hasher, logger)

	sessionStorage, closeStorage, err := newSessionStorage(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("failed to initialize session storage", "error", err)
	}
	defer closeStorage()

	sessions := session.NewStore(session.Config{
		CookieName:   cfg.Session.CookieName,
		CookieSecure: cfg.Session.CookieSecure,
		Expiration:   cfg.Session.Expiration,
	}, sessionStorage)

	app := httprouter.New(
		userService,
		bookService,
		authService,
		sessions,
		httpcontext.NewManager(),
		conn,
		logger,
		httprouter.Options{ReadTimeout: cfg.HTTP.ReadTimeout, WriteTimeout: cfg.HTTP.WriteTimeout},
	).Register()

	servers := []model.Server{
		httpserver.NewHTTPServer(app, fmt.Sprintf(":%s", cfg.HTTP.Port)),
	}
	if cfg.GRPC.Enabled {
		gs := grpcrouter.New(conn, logger).Register()
		servers = append(servers, grpcserver.NewGRPCServer(gs, fmt.Sprintf(":%s", cfg.GRPC.Port)))
	}

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()

	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("error during tracer shutdown", "error", err)
	}
	logger.Info("shutdown complete")
}

// newSessionStorage connects to Redis when an address is configured. A nil
// storage makes the session store fall back to memory.
func newSessionStorage(ctx context.Context, cfg config.Redis, logger *logger.Logger) (fiber.Storage, func(), error) {
	if cfg.Addr == "" {
		logger.Info("session storage: in memory")
		return nil, func() {}, nil
	}

	storage, err := redis.NewSessionStorage(ctx, redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		Prefix:   cfg.Prefix,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("session storage: redis", "address", cfg.Addr)

	return storage, func() { _ = storage.Close() }, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
