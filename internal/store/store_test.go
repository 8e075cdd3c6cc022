package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/flashdeck/internal/models"
	"github.com/localnerve/flashdeck/internal/store"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.User{},
		&models.Flashcard{},
		&models.Score{},
		&models.QuizAttempt{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

// TestUserStoreSentinels tests the duplicate and not-found translations
func TestUserStoreSentinels(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	stores := store.New(db)

	user := &models.User{Username: "harry", PasswordHash: "x"}
	if err := stores.Users.Create(ctx, user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	dupe := &models.User{Username: "harry", PasswordHash: "y"}
	if err := stores.Users.Create(ctx, dupe); !errors.Is(err, store.ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got: %v", err)
	}

	if _, err := stores.Users.FindByID(ctx, 9999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
	if _, err := stores.Users.FindByUsername(ctx, "nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

// TestFlashcardDelete tests delete of a missing row
func TestFlashcardDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	stores := store.New(db)
	owner := createUser(t, db, "owner")

	card := &models.Flashcard{Question: "q", Answer: "a", UserID: owner.ID}
	if err := stores.Flashcards.Create(ctx, card); err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	if err := stores.Flashcards.Delete(ctx, card.ID); err != nil {
		t.Fatalf("Failed to delete card: %v", err)
	}
	if err := stores.Flashcards.Delete(ctx, card.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got: %v", err)
	}
}

// TestUpsertBestOutcomes tests the created/unchanged/improved sequence
func TestUpsertBestOutcomes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	stores := store.New(db)
	owner := createUser(t, db, "owner")

	outcome, row, err := stores.Scores.UpsertBest(ctx, owner.ID, "grader", 5)
	if err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}
	if outcome != store.ScoreCreated || row.Score != 5 {
		t.Errorf("Expected created/5, got %s/%d", outcome, row.Score)
	}

	outcome, row, err = stores.Scores.UpsertBest(ctx, owner.ID, "grader", 5)
	if err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}
	if outcome != store.ScoreUnchanged || row.Score != 5 {
		t.Errorf("Expected unchanged/5, got %s/%d", outcome, row.Score)
	}

	outcome, row, err = stores.Scores.UpsertBest(ctx, owner.ID, "grader", 8)
	if err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}
	if outcome != store.ScoreImproved || row.Score != 8 {
		t.Errorf("Expected improved/8, got %s/%d", outcome, row.Score)
	}
}

// TestUpsertBestSingleRow tests the (owner, grader) uniqueness under
// interleaved submissions
func TestUpsertBestSingleRow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	stores := store.New(db)
	owner := createUser(t, db, "owner")

	submissions := []int{3, 9, 1, 7, 9, 0}
	for _, s := range submissions {
		if _, _, err := stores.Scores.UpsertBest(ctx, owner.ID, "grader", s); err != nil {
			t.Fatalf("Failed to upsert %d: %v", s, err)
		}
	}

	var rows []models.Score
	if err := db.Where("user_id = ? AND belongs = ?", owner.ID, "grader").Find(&rows).Error; err != nil {
		t.Fatalf("Failed to load scores: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected a single row for the pair, got %d", len(rows))
	}
	if rows[0].Score != 9 {
		t.Errorf("Expected the best score 9 to survive, got %d", rows[0].Score)
	}
}

// TestScoreListOrdering tests the owner and grader listings
func TestScoreListOrdering(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	stores := store.New(db)
	owner := createUser(t, db, "owner")
	other := createUser(t, db, "other")

	for grader, score := range map[string]int{"low": 2, "high": 9, "mid": 5} {
		if _, _, err := stores.Scores.UpsertBest(ctx, owner.ID, grader, score); err != nil {
			t.Fatalf("Failed to upsert: %v", err)
		}
	}
	if _, _, err := stores.Scores.UpsertBest(ctx, other.ID, "high", 4); err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}

	byOwner, err := stores.Scores.ListByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("Failed to list by owner: %v", err)
	}
	if len(byOwner) != 3 {
		t.Fatalf("Expected 3 scores for owner, got %d", len(byOwner))
	}
	for i := 1; i < len(byOwner); i++ {
		if byOwner[i-1].Score < byOwner[i].Score {
			t.Error("Expected owner listing in descending score order")
		}
	}

	byGrader, err := stores.Scores.ListByGrader(ctx, "high")
	if err != nil {
		t.Fatalf("Failed to list by grader: %v", err)
	}
	if len(byGrader) != 2 {
		t.Errorf("Expected 2 scores for grader high, got %d", len(byGrader))
	}
}

// TestAttemptRoundTrip tests token lookup
func TestAttemptRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	stores := store.New(db)
	owner := createUser(t, db, "owner")

	attempt := &models.QuizAttempt{
		Token:   "11111111-2222-3333-4444-555555555555",
		UserID:  owner.ID,
		Grader:  "grader",
		CardIDs: []byte("[1,2,3]"),
	}
	if err := stores.Attempts.Create(ctx, attempt); err != nil {
		t.Fatalf("Failed to create attempt: %v", err)
	}

	found, err := stores.Attempts.FindByToken(ctx, attempt.Token)
	if err != nil {
		t.Fatalf("Failed to find attempt: %v", err)
	}
	if found.Grader != "grader" || found.UserID != owner.ID {
		t.Errorf("Attempt round trip mismatch: %+v", found)
	}

	if _, err := stores.Attempts.FindByToken(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}
