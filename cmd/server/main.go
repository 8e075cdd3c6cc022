// main.go
//
// A multi-user flashcard and quiz service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of flashdeck.
// flashdeck is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// flashdeck is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with flashdeck.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/localnerve/flashdeck/internal/config"
	"github.com/localnerve/flashdeck/internal/database"
	"github.com/localnerve/flashdeck/internal/handlers"
	"github.com/localnerve/flashdeck/internal/middleware"
	"github.com/localnerve/flashdeck/internal/services"
	"github.com/localnerve/flashdeck/internal/store"
	"github.com/localnerve/flashdeck/internal/types"
	"github.com/localnerve/flashdeck/internal/utils"

	_ "github.com/localnerve/flashdeck/docs/api" // Swagger docs
)

// @title Flashdeck API
// @version 1.0.0
// @description Multi-user flashcard and quiz service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/flashdeck
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name flashdeck_session

func main() {
	// Load .env when present; environment wins otherwise
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("flashdeck")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Server-side sessions
	sessions := session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.SessionCookie,
		Expiration:     time.Duration(cfg.SessionExpiryHrs) * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	// Stores and services
	stores := store.New(db)
	authService := services.NewAuthService(stores.Users)
	cardService := services.NewFlashcardService(stores.Flashcards)
	quizService := services.NewQuizService(stores.Users, stores.Flashcards, stores.Scores, stores.Attempts, cfg.QuizSize)
	directoryService := services.NewDirectoryService(stores.Users, stores.Flashcards, stores.Scores)

	// Handlers
	authHandler := &handlers.AuthHandler{Auth: authService, Sessions: sessions}
	profileHandler := &handlers.ProfileHandler{Cards: cardService, Quiz: quizService}
	directoryHandler := &handlers.DirectoryHandler{Directory: directoryService}
	quizHandler := &handlers.QuizHandler{Quiz: quizService}

	// Session-resolving guard for protected routes
	guard := middleware.AuthUser(sessions, authService)

	// Landing and health
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":   "flashdeck",
			"ok":        true,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// Auth routes (public)
	app.Get("/signup", authHandler.GetSignup)
	app.Post("/signup", authHandler.Signup)
	app.Get("/login", authHandler.GetLogin)
	app.Post("/login", authHandler.Login)
	// Logout stays unguarded so repeat calls succeed
	app.Get("/logout", authHandler.Logout)

	// Profile routes
	app.Get("/my-profile", guard, profileHandler.GetProfile)
	app.Post("/my-profile", guard, profileHandler.CreateCard)
	app.Post("/my-profile/remove/:id", guard, profileHandler.RemoveCard)

	// Directory routes (the legacy surface accepted GET and POST)
	app.Get("/users", guard, directoryHandler.ListUsers)
	app.Post("/users", guard, directoryHandler.ListUsers)
	app.Get("/users/:id", guard, directoryHandler.GetUserProfile)
	app.Post("/users/:id", guard, directoryHandler.GetUserProfile)

	// Quiz routes
	app.Get("/quiz/:id", guard, quizHandler.StartQuiz)
	app.Post("/quiz/:id", guard, quizHandler.SubmitScore)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Typed domain errors carry their own status and type tag
	if ce, ok := err.(*types.CustomError); ok {
		return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
	}

	code := fiber.StatusInternalServerError
	message := err.Error()
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return utils.ErrorResponse(c, message, code, "unknown")
}
