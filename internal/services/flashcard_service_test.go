package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/localnerve/flashdeck/internal/models"
	"github.com/localnerve/flashdeck/internal/services"
	"github.com/localnerve/flashdeck/internal/store"
	"github.com/localnerve/flashdeck/internal/types"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

// TestCreateFlashcard tests flashcard creation and trimming
func TestCreateFlashcard(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	cards := services.NewFlashcardService(store.New(db).Flashcards)
	owner := createUser(t, db, "owner")

	card, err := cards.Create(ctx, owner.ID, "  What is 2+2?  ", " 4 ")
	if err != nil {
		t.Fatalf("Failed to create flashcard: %v", err)
	}
	if card.Question != "What is 2+2?" || card.Answer != "4" {
		t.Errorf("Expected trimmed fields, got %q / %q", card.Question, card.Answer)
	}
	if card.UserID != owner.ID {
		t.Errorf("Expected card owner %d, got %d", owner.ID, card.UserID)
	}
}

// TestCreateFlashcardValidation tests blank and oversized fields
func TestCreateFlashcardValidation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	cards := services.NewFlashcardService(store.New(db).Flashcards)
	owner := createUser(t, db, "owner")

	long := strings.Repeat("q", 256)
	cases := []struct {
		name     string
		question string
		answer   string
	}{
		{"BlankQuestion", "", "a"},
		{"BlankAnswer", "q", ""},
		{"WhitespaceQuestion", "   ", "a"},
		{"OversizedQuestion", long, "a"},
		{"OversizedAnswer", "q", long},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cards.Create(ctx, owner.ID, tc.question, tc.answer)
			assertCustomError(t, err, 400, types.ErrTypeCardValidation)
		})
	}
}

// TestCreateFlashcardDuplicatesAllowed tests that identical cards coexist
func TestCreateFlashcardDuplicatesAllowed(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	cards := services.NewFlashcardService(store.New(db).Flashcards)
	owner := createUser(t, db, "owner")

	for i := 0; i < 2; i++ {
		if _, err := cards.Create(ctx, owner.ID, "same question", "same answer"); err != nil {
			t.Fatalf("Failed to create duplicate card: %v", err)
		}
	}

	list, err := cards.List(ctx, owner.ID)
	if err != nil {
		t.Fatalf("Failed to list cards: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(list))
	}
}

// TestListFlashcardsScoped tests that listing is per owner, in insertion order
func TestListFlashcardsScoped(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	cards := services.NewFlashcardService(store.New(db).Flashcards)
	owner := createUser(t, db, "owner")
	other := createUser(t, db, "other")

	for _, q := range []string{"first", "second", "third"} {
		if _, err := cards.Create(ctx, owner.ID, q, "a"); err != nil {
			t.Fatalf("Failed to create card: %v", err)
		}
	}
	if _, err := cards.Create(ctx, other.ID, "not yours", "a"); err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	list, err := cards.List(ctx, owner.ID)
	if err != nil {
		t.Fatalf("Failed to list cards: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(list))
	}
	for i, q := range []string{"first", "second", "third"} {
		if list[i].Question != q {
			t.Errorf("Expected card %d to be %q, got %q", i, q, list[i].Question)
		}
	}
}

// TestRemoveFlashcard tests removal and its ownership and existence checks
func TestRemoveFlashcard(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	cards := services.NewFlashcardService(store.New(db).Flashcards)
	owner := createUser(t, db, "owner")
	other := createUser(t, db, "other")

	card, err := cards.Create(ctx, owner.ID, "q", "a")
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	// Someone else cannot remove it
	err = cards.Remove(ctx, card.ID, other.ID)
	assertCustomError(t, err, 403, types.ErrTypeCardAuthorization)

	// The owner can
	if err := cards.Remove(ctx, card.ID, owner.ID); err != nil {
		t.Fatalf("Failed to remove card: %v", err)
	}

	// Gone means 404, even for the owner
	err = cards.Remove(ctx, card.ID, owner.ID)
	assertCustomError(t, err, 404, types.ErrTypeCardNotFound)
}
