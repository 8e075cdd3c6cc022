package services_test

import (
	"context"
	"testing"

	"github.com/localnerve/flashdeck/internal/services"
	"github.com/localnerve/flashdeck/internal/store"
	"github.com/localnerve/flashdeck/internal/types"
	"gorm.io/gorm"
)

func newDirectoryService(db *gorm.DB) *services.DirectoryService {
	stores := store.New(db)
	return services.NewDirectoryService(stores.Users, stores.Flashcards, stores.Scores)
}

// TestListOtherUsers tests that the requester is excluded
func TestListOtherUsers(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	directory := newDirectoryService(db)

	me := createUser(t, db, "me")
	createUser(t, db, "peer1")
	createUser(t, db, "peer2")

	others, err := directory.ListOtherUsers(ctx, me.ID)
	if err != nil {
		t.Fatalf("Failed to list users: %v", err)
	}
	if len(others) != 2 {
		t.Fatalf("Expected 2 other users, got %d", len(others))
	}
	for _, u := range others {
		if u.ID == me.ID {
			t.Error("Requester must not appear in the directory listing")
		}
	}
}

// TestViewUserProfile tests the public profile view
func TestViewUserProfile(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	directory := newDirectoryService(db)
	quiz := newQuizService(db, 10)

	target := createUser(t, db, "target")
	seedDeck(t, db, target.ID, 3)
	if _, _, err := quiz.SubmitScore(ctx, target.ID, "grader", 7); err != nil {
		t.Fatalf("Failed to submit score: %v", err)
	}

	profile, err := directory.ViewUserProfile(ctx, target.ID)
	if err != nil {
		t.Fatalf("Failed to view profile: %v", err)
	}
	if profile.User.Username != "target" {
		t.Errorf("Expected username target, got %q", profile.User.Username)
	}
	if len(profile.Flashcards) != 3 {
		t.Errorf("Expected 3 flashcards, got %d", len(profile.Flashcards))
	}
	if len(profile.Scores) != 1 || profile.Scores[0].Belongs != "grader" {
		t.Errorf("Expected one score by grader, got %+v", profile.Scores)
	}
}

// TestViewUserProfileMissing tests the missing-user case
func TestViewUserProfileMissing(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	directory := newDirectoryService(db)

	_, err := directory.ViewUserProfile(ctx, 9999)
	assertCustomError(t, err, 404, types.ErrTypeUserNotFound)
}
