package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/fadilmartias/interview-prep/internal/config"
	"github.com/fadilmartias/interview-prep/internal/domain/fiber/handler"
	"github.com/fadilmartias/interview-prep/internal/middleware"
	"github.com/fadilmartias/interview-prep/internal/repository"
	"github.com/fadilmartias/interview-prep/internal/service"
	"github.com/fadilmartias/interview-prep/internal/usecase"
	"github.com/fadilmartias/interview-prep/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	// A missing API key is a startup error, not something to discover on the first request.
	generation, err := service.NewGenerationClient(ctx, config.LoadGenerationConfig(), config.LoadGeminiConfig(), config.LoadOpenRouterConfig())
	if err != nil {
		log.Fatalf("Invalid generation config: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 8 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "same-origin",
	}))
	app.Use(middleware.RateLimiter(120, 1*time.Minute))

	store := session.New(session.Config{
		Expiration:     appConfig.SessionTTL,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSecure:   appConfig.IsProduction(),
		CookieSameSite: "Lax",
	})

	users, err := repository.NewUsers(config.LoadDBConfig(), appConfig.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	creds := service.NewCredentialService(users)
	authUC := usecase.NewAuthUsecase(creds)
	prepUC := usecase.NewPreparationUsecase(util.NewDocumentExtractor(appConfig.PDFExtractor), generation, usecase.NewBusyTracker())

	h := handler.NewPageHandler(authUC, prepUC, store, appConfig.Name)
	h.RegisterRoutes(app)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}
