package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/ats-checker/internal/config"
	"alfredoptarigan/ats-checker/internal/handlers"
	"alfredoptarigan/ats-checker/internal/logger"
	"alfredoptarigan/ats-checker/internal/repositories"
	"alfredoptarigan/ats-checker/internal/services"
)

func main() {
	cfg, envLoaded := config.Load()

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if !envLoaded {
		log.Info("no .env file found, using environment and defaults")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	scanRepo := repositories.NewScanRepository(db)

	storage, err := newBlobStorage(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.Error(err))
	}
	if err := storage.EnsureReady(ctx); err != nil {
		log.Fatal("storage not ready", zap.Error(err))
	}
	log.Info("storage initialized", zap.String("driver", cfg.Storage.Driver))

	var generator services.TextGenerator
	if cfg.Gemini.APIKey != "" {
		generator, err = services.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatal("failed to initialize Gemini", zap.Error(err))
		}
		log.Info("AI coach enabled", zap.String("model", cfg.Gemini.Model))
	}
	coach := services.NewCoachService(generator, cfg.Gemini.RequestsPerSecond, cfg.Gemini.RetryMaxAttempts, log)

	parser := services.NewDocumentParserService(log)
	recorder := services.NewScanRecorder(storage, scanRepo, log)
	scanner := services.NewScannerService(parser, coach, recorder, log)
	batch := services.NewBatchScanner(scanner, cfg.Worker.Concurrency, log)

	scanHandler := handlers.NewScanHandler(batch, cfg.Storage.MaxFileSize, log)
	generatorHandler := handlers.NewGeneratorHandler(scanner)
	historyHandler := handlers.NewHistoryHandler(scanRepo)

	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Checker API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 10,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/scan", scanHandler.HandleScan)
	api.Post("/generator", generatorHandler.HandleGenerate)
	api.Get("/scans", historyHandler.HandleList)
	api.Get("/scans/:id", historyHandler.HandleGet)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Resume Checker API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/scan",
				"POST /api/v1/generator",
				"GET /api/v1/scans",
				"GET /api/v1/scans/:id",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func newBlobStorage(ctx context.Context, cfg *config.Config) (services.BlobStorage, error) {
	if cfg.Storage.Driver == config.StorageDriverS3 {
		s3 := cfg.Storage.S3
		return services.NewS3Storage(ctx, services.S3StorageConfig{
			Bucket:    s3.Bucket,
			Endpoint:  s3.Endpoint,
			Region:    s3.Region,
			AccessKey: s3.AccessKey,
			SecretKey: s3.SecretKey,
			Prefix:    s3.Prefix,
		})
	}
	return services.NewLocalStorage(cfg.Storage.UploadPath), nil
}
