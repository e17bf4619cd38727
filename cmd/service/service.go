package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	_ "speaksmart/docs"
	"speaksmart/internal/api"
	"speaksmart/internal/cache"
	"speaksmart/internal/config"
	"speaksmart/internal/database"
	"speaksmart/internal/logger"
	"speaksmart/internal/middleware"
	"speaksmart/internal/router"
	"speaksmart/internal/service"
	"speaksmart/internal/worker"
	"speaksmart/web"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	notifyContext   = signal.NotifyContext
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger(cfg.Env, cfg.LogLevel)

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := newPgxPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("close redis")
		}
	}()

	if err := runMigrationsFn(cfg.Database.URL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	wp := newWorkerPool(cfg.Workers.Count, log)
	defer wp.Stop()

	e, err := newServer(cfg, log, db, rdb, wp)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, cfg.Addr()) }()
	log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("server started")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// newServer builds the Echo instance with middleware, API routes, pages and Swagger UI.
func newServer(cfg *config.Config, log zerolog.Logger, db database.DB, rdb cache.Cache, wp worker.Pool) (*echo.Echo, error) {
	v := validator.New()
	if err := api.RegisterValidations(v, cfg.Categories.Strict); err != nil {
		return nil, fmt.Errorf("register validations: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: v}

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(echomw.Secure())

	router.Setup(e, router.Deps{
		DB:           db,
		Cache:        rdb,
		Lists:        cache.NewListCache(rdb, cfg.Cache.ListTTL, wp, log),
		Sessions:     service.NewSessionManager(rdb, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL),
		Static:       web.Static,
		EnforceRoles: cfg.Auth.EnforceRoles,
		RateLimit:    cfg.Server.RateLimit,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e, nil
}
