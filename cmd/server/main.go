package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arnold/hard75-api/internal/config"
	"github.com/arnold/hard75-api/internal/database"
	"github.com/arnold/hard75-api/internal/handlers"
	"github.com/arnold/hard75-api/internal/logger"
	"github.com/arnold/hard75-api/internal/middleware"
	"github.com/arnold/hard75-api/internal/routes"
	"github.com/arnold/hard75-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	zapLogger, err := logger.Init(cfg.Debug, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync(zapLogger)

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", cfg.Debug),
		zap.String("server_port", cfg.Port),
		zap.Bool("push_configured", cfg.FCMServiceAccount != ""),
	)

	if err := database.Connect(cfg); err != nil {
		zapLogger.Fatal("failed_to_connect_to_database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		zapLogger.Fatal("failed_to_migrate_database", zap.Error(err))
	}
	zapLogger.Info("connected_to_database")

	if err := services.InitPush(context.Background(), cfg.FCMServiceAccount); err != nil {
		zapLogger.Warn("failed_to_initialize_push", zap.Error(err))
	}

	middleware.SetSecret(cfg.JWTSecret)
	handlers.Configure(cfg)

	app := fiber.New(fiber.Config{
		AppName:   "hard75-api",
		BodyLimit: 6 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.Logging(zapLogger))

	routes.Setup(app, cfg.UploadsDir)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zapLogger.Fatal("server_failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting_down_server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		zapLogger.Error("server_forced_to_shutdown", zap.Error(err))
	}
	zapLogger.Info("server_exited")
}
