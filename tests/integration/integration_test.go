package integration_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/flashdeck/internal/config"
	"github.com/localnerve/flashdeck/internal/database"
	"github.com/localnerve/flashdeck/internal/handlers"
	"github.com/localnerve/flashdeck/internal/middleware"
	"github.com/localnerve/flashdeck/internal/services"
	"github.com/localnerve/flashdeck/internal/store"
	"github.com/localnerve/flashdeck/internal/types"
	"github.com/localnerve/flashdeck/tests/helpers"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestWithMariaDB tests the service with a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	if !helpers.DockerAvailable(ctx) {
		t.Skip("Skipping integration test, docker is not available")
	}

	tc, err := helpers.CreateDBContainer(t)
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer tc.Terminate(t)

	// Create config
	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            tc.Settings.Host,
		DBPort:            tc.Settings.Port,
		DBDatabase:        tc.Settings.Database,
		DBUser:            tc.Settings.User,
		DBPassword:        tc.Settings.Password,
		DBConnectionLimit: 5,
		QuizSize:          10,
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("SignupAndLogin", func(t *testing.T) {
		testSignupAndLogin(t, db, "maria")
	})

	t.Run("FlashcardOwnership", func(t *testing.T) {
		testFlashcardOwnership(t, db, "maria")
	})

	t.Run("QuizBestScore", func(t *testing.T) {
		testQuizBestScore(t, db, "maria")
	})

	t.Run("HandlerQuizGate", func(t *testing.T) {
		testHandlerQuizGate(t, db, "maria")
	})
}

// TestWithPostgreSQL tests the service with a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	if !helpers.DockerAvailable(ctx) {
		t.Skip("Skipping integration test, docker is not available")
	}

	image := os.Getenv("POSTGRES_IMAGE")
	if image == "" {
		image = "postgres:17"
	}

	// Start PostgreSQL container
	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	// Get container host and port
	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
		QuizSize:          10,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("SignupAndLogin", func(t *testing.T) {
		testSignupAndLogin(t, db, "pg")
	})

	t.Run("QuizBestScore", func(t *testing.T) {
		testQuizBestScore(t, db, "pg")
	})
}

// testSignupAndLogin tests the credential lifecycle against a real database
func testSignupAndLogin(t *testing.T, db *gorm.DB, prefix string) {
	ctx := context.Background()
	stores := store.New(db)
	auth := services.NewAuthService(stores.Users)

	username := prefix + "-carol"

	user, err := auth.SignUp(ctx, username, "s3cret-pw")
	if err != nil {
		t.Fatalf("Failed to sign up: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected signup to assign an id")
	}

	// Duplicate username must surface as a conflict
	_, err = auth.SignUp(ctx, username, "other-pw")
	var custom *types.CustomError
	if !errors.As(err, &custom) || custom.Code != fiber.StatusConflict {
		t.Errorf("Expected 409 conflict on duplicate username, got: %v", err)
	}

	// Login with the right password
	loggedIn, err := auth.LogIn(ctx, username, "s3cret-pw")
	if err != nil {
		t.Fatalf("Failed to log in: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("Expected login to resolve user %d, got %d", user.ID, loggedIn.ID)
	}

	// Wrong password and unknown user look the same
	_, badPass := auth.LogIn(ctx, username, "wrong-pw")
	_, badUser := auth.LogIn(ctx, prefix+"-nobody", "wrong-pw")
	for _, err := range []error{badPass, badUser} {
		if !errors.As(err, &custom) || custom.Code != fiber.StatusUnauthorized {
			t.Errorf("Expected 401 on bad credentials, got: %v", err)
		}
	}
}

// testFlashcardOwnership tests that removal is restricted to the owner
func testFlashcardOwnership(t *testing.T, db *gorm.DB, prefix string) {
	ctx := context.Background()
	stores := store.New(db)
	cards := services.NewFlashcardService(stores.Flashcards)

	owner := helpers.CreateTestUser(t, db, prefix+"-owner", "pw")
	other := helpers.CreateTestUser(t, db, prefix+"-other", "pw")

	card, err := cards.Create(ctx, owner.ID, "What is the capital of France?", "Paris")
	if err != nil {
		t.Fatalf("Failed to create flashcard: %v", err)
	}

	// A non-owner cannot remove the card
	err = cards.Remove(ctx, card.ID, other.ID)
	var custom *types.CustomError
	if !errors.As(err, &custom) || custom.Code != fiber.StatusForbidden {
		t.Errorf("Expected 403 for non-owner removal, got: %v", err)
	}

	// The owner can
	if err := cards.Remove(ctx, card.ID, owner.ID); err != nil {
		t.Fatalf("Failed to remove own flashcard: %v", err)
	}

	// Removing again is a 404
	err = cards.Remove(ctx, card.ID, owner.ID)
	if !errors.As(err, &custom) || custom.Code != fiber.StatusNotFound {
		t.Errorf("Expected 404 removing missing flashcard, got: %v", err)
	}
}

// testQuizBestScore tests quiz sampling and the keep-max score upsert
func testQuizBestScore(t *testing.T, db *gorm.DB, prefix string) {
	ctx := context.Background()
	stores := store.New(db)
	quiz := services.NewQuizService(stores.Users, stores.Flashcards, stores.Scores, stores.Attempts, 10)

	owner := helpers.CreateTestUser(t, db, prefix+"-quizowner", "pw")
	helpers.CreateTestDeck(t, db, owner.ID, 12)
	grader := prefix + "-grader"

	started, err := quiz.Start(ctx, owner.ID, grader)
	if err != nil {
		t.Fatalf("Failed to start quiz: %v", err)
	}
	if len(started.Questions) != 10 {
		t.Errorf("Expected 10 questions, got %d", len(started.Questions))
	}

	// The attempt is recorded and retrievable by token
	attempt, err := stores.Attempts.FindByToken(ctx, started.Token)
	if err != nil {
		t.Fatalf("Failed to retrieve quiz attempt: %v", err)
	}
	if attempt.Grader != grader {
		t.Errorf("Expected attempt grader %q, got %q", grader, attempt.Grader)
	}

	// First submission creates
	outcome, row, err := quiz.SubmitScore(ctx, owner.ID, grader, 7)
	if err != nil {
		t.Fatalf("Failed to submit score: %v", err)
	}
	if outcome != store.ScoreCreated || row.Score != 7 {
		t.Errorf("Expected created score 7, got %s/%d", outcome, row.Score)
	}

	// Lower submission keeps the existing best
	outcome, row, err = quiz.SubmitScore(ctx, owner.ID, grader, 5)
	if err != nil {
		t.Fatalf("Failed to submit score: %v", err)
	}
	if outcome != store.ScoreUnchanged || row.Score != 7 {
		t.Errorf("Expected unchanged score 7, got %s/%d", outcome, row.Score)
	}

	// Higher submission replaces
	outcome, row, err = quiz.SubmitScore(ctx, owner.ID, grader, 9)
	if err != nil {
		t.Fatalf("Failed to submit score: %v", err)
	}
	if outcome != store.ScoreImproved || row.Score != 9 {
		t.Errorf("Expected improved score 9, got %s/%d", outcome, row.Score)
	}

	// Exactly one row exists for the pair
	rows, err := stores.Scores.ListByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("Failed to list scores: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected a single best-score row, got %d", len(rows))
	}
}

// testHandlerQuizGate tests the 422 response for undersized decks with a real database
func testHandlerQuizGate(t *testing.T, db *gorm.DB, prefix string) {
	stores := store.New(db)
	quiz := services.NewQuizService(stores.Users, stores.Flashcards, stores.Scores, stores.Attempts, 10)

	owner := helpers.CreateTestUser(t, db, prefix+"-thindeck", "pw")
	helpers.CreateTestDeck(t, db, owner.ID, 3)
	grader := helpers.CreateTestUser(t, db, prefix+"-gatekeeper", "pw")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var custom *types.CustomError
			if errors.As(err, &custom) {
				return c.Status(custom.Code).JSON(custom)
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	handler := &handlers.QuizHandler{Quiz: quiz}
	app.Get("/quiz/:id", func(c *fiber.Ctx) error {
		c.Locals(middleware.LocalsUserKey, grader)
		return c.Next()
	}, handler.StartQuiz)

	req := httptest.NewRequest("GET", "/quiz/"+strconv.FormatUint(owner.ID, 10), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 422)
}

// TestHealthCheck tests the health check functionality
func TestHealthCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	if !helpers.DockerAvailable(ctx) {
		t.Skip("Skipping integration test, docker is not available")
	}

	tc, err := helpers.CreateDBContainer(t)
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer tc.Terminate(t)

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            tc.Settings.Host,
		DBPort:            tc.Settings.Port,
		DBDatabase:        tc.Settings.Database,
		DBUser:            tc.Settings.User,
		DBPassword:        tc.Settings.Password,
		DBConnectionLimit: 5,
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run health check
	result := services.HealthCheck(cfg, db)

	if result.Database != "ok" {
		t.Errorf("Expected database to be ok, got: %s", result.Database)
	}

	if result.Status != "healthy" {
		t.Errorf("Expected status to be healthy, got: %s", result.Status)
	}
}
