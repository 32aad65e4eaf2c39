package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educonnect_backend/internals/configs"
	database "educonnect_backend/internals/databases"
	paymentService "educonnect_backend/internals/features/finance/payments/service"
	"educonnect_backend/internals/features/records/store"
	scheduler "educonnect_backend/internals/features/users/auth/scheduler"
	authService "educonnect_backend/internals/features/users/auth/service"
	helper "educonnect_backend/internals/helpers"
	middlewares "educonnect_backend/internals/middlewares"
	routes "educonnect_backend/internals/route"
	"educonnect_backend/internals/seeds"
)

func main() {
	logger := helper.NewLogger(os.Stdout, os.Getenv("LOG_LEVEL"))
	cfg := configs.LoadEnv(logger)
	logger = helper.NewLogger(os.Stdout, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg configs.Config, logger log.Logger) error {
	ctx := context.Background()

	// 🔌 store: JSON file or a single postgres row
	var (
		persister store.Persister
		db        *gorm.DB
	)
	switch cfg.StoreDriver {
	case configs.StoreDriverPostgres:
		var err error
		if db, err = database.ConnectDB(cfg.DB, logger); err != nil {
			return err
		}
		database.TunePool(db, logger)
		defer database.Close(db)
		if persister, err = store.NewGormPersister(db); err != nil {
			return err
		}
	case configs.StoreDriverFile, "":
		persister = store.NewFilePersister(cfg.DataFile)
	default:
		return errors.New("unknown STORE_DRIVER " + cfg.StoreDriver)
	}

	st, err := store.Open(ctx, persister, store.WithLogger(log.With(logger, "component", "store")))
	if err != nil {
		return err
	}
	if cfg.SeedDemoData {
		if err := seeds.RunAllSeeds(ctx, st, logger); err != nil {
			level.Warn(logger).Log("msg", "seeding failed", "err", err)
		}
	}

	// 🔐 admin sessions
	hash := cfg.AdminPasswordHash
	if hash == "" {
		if hash, err = authService.HashPassword(cfg.AdminPassword); err != nil {
			return err
		}
	}
	secret := cfg.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
		level.Warn(logger).Log("msg", "using a random JWT secret, sessions end on restart anyway")
	}
	sessions, err := authService.NewSessionService(authService.SessionConfig{
		Secret:       secret,
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		TTL:          cfg.SessionTTL,
	})
	if err != nil {
		return err
	}
	sweeper, err := scheduler.StartSessionCleanupScheduler(sessions, cfg.SessionSweepCron, logger)
	if err != nil {
		return err
	}
	defer sweeper.Stop()

	// ✅ MIDTRANS
	var gateway paymentService.Gateway
	if cfg.MidtransServerKey != "" {
		gateway = paymentService.NewSnapGateway(cfg.MidtransServerKey, cfg.MidtransUseProd)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromStoreError(c, err)
		},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing
	reqLogger := log.With(logger, "component", "http")
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		level.Debug(reqLogger).Log("id", id, "method", c.Method(), "url", c.OriginalURL(),
			"status", c.Response().StatusCode(), "dur", time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app, cfg)

	routes.SetupRoutes(app, routes.Deps{
		Config:   cfg,
		Store:    st,
		Sessions: sessions,
		Gateway:  gateway,
		DB:       db,
		Validate: helper.NewValidator(),
		Logger:   logger,
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	errc := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "listening", "port", cfg.Port, "store", cfg.StoreDriver)
		errc <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errc:
		return err
	case sig := <-quit:
		level.Info(logger).Log("msg", "shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
