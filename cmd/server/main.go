package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KUD2IP/StreamFlow/pkg/config"
	consts "github.com/KUD2IP/StreamFlow/pkg/constants"

	"github.com/KUD2IP/StreamFlow/internal/delivery/http/handlers"
	"github.com/KUD2IP/StreamFlow/internal/delivery/http/routers"
	"github.com/KUD2IP/StreamFlow/internal/domain/repositories"
	"github.com/KUD2IP/StreamFlow/internal/infrastructure/cache"
	"github.com/KUD2IP/StreamFlow/internal/infrastructure/db"
	"github.com/KUD2IP/StreamFlow/internal/infrastructure/processor"
	"github.com/KUD2IP/StreamFlow/internal/infrastructure/queue"
	infra_repo "github.com/KUD2IP/StreamFlow/internal/infrastructure/repositories"
	"github.com/KUD2IP/StreamFlow/internal/infrastructure/storage"
	"github.com/KUD2IP/StreamFlow/internal/infrastructure/tempfiles"
	"github.com/KUD2IP/StreamFlow/internal/usecases"

	_ "github.com/KUD2IP/StreamFlow/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	database, err := db.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
		sqlDB, err := database.DB()
		if err != nil {
			log.Fatalf("failed to get sql.DB: %v", err)
		}
		goose.SetBaseFS(nil)
		if err := goose.Up(sqlDB, "."); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})
	statusCache := cache.NewStatusCache(rdb, cfg.Redis.StatusTTL)

	var store repositories.StorageStrategy
	switch cfg.Storage.Driver {
	case "local":
		store = storage.NewLocalStorage(cfg.Storage.LocalDir)
	default:
		store, err = storage.NewS3Storage(cfg.Storage)
		if err != nil {
			log.Fatalf("failed to initialize s3 storage: %v", err)
		}
	}

	tempman := tempfiles.NewManager(cfg.Upload.TempDir)
	ffmpeg := processor.NewFFmpeg(cfg.FFmpeg)

	videoRepo := infra_repo.NewVideoRepository(database)
	qualityRepo := infra_repo.NewVideoQualityRepository(database)

	qualityProcessor := usecases.NewQualityProcessor(ffmpeg, store, videoRepo, qualityRepo, cfg.Storage.VideoBucket)
	transcodeService := usecases.NewTranscodeService(videoRepo, store, qualityProcessor, tempman, ffmpeg, statusCache, usecases.TranscodeConfig{
		ThumbnailBucket: cfg.Storage.ThumbnailBucket,
		ThumbnailWidth:  cfg.Processing.ThumbnailWidth,
		MinQualities:    cfg.Processing.MinQualities,
	})

	pool := queue.NewWorkerPool(cfg.Processing.Workers, cfg.Processing.QueueSize, transcodeService)

	uploadService := usecases.NewUploadService(videoRepo, tempman, pool, cfg.Upload)
	videoService := usecases.NewVideoService(videoRepo, qualityRepo, statusCache)
	cleanupService := usecases.NewCleanupService(tempman)

	// Stale workspaces are leftovers from crashed or killed conversions.
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := cleanupService.CleanupOldWorkspaces(cfg.Upload.TempMaxAge); err != nil {
			log.Printf("Workspace cleanup failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("failed to schedule cleanup job: %v", err)
	}
	c.Start()

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxFileSize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	videoHandler := handlers.NewVideoHandler(uploadService, videoService)
	routers.SetupVideoRoutes(app, videoHandler)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown signal received, stopping server...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("failed to shut down server: %v", err)
	}

	c.Stop()
	pool.Shutdown()
	log.Println("Server stopped")
}
