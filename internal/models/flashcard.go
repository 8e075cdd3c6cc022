package models

import (
	"time"
)

// Flashcard is a single question/answer pair owned by one user.
// Cards are created and deleted, never updated.
type Flashcard struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Question  string    `gorm:"size:255;not null" json:"question"`
	Answer    string    `gorm:"size:255;not null" json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName overrides the table name for Flashcard
func (Flashcard) TableName() string {
	return "flashcards"
}
