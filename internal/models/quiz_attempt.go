package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuizAttempt records a started quiz: which cards were sampled for
// which grader against which deck. The token is handed to the client
// and may accompany the score submission. Keeping the sample
// server-side is what makes later server-side grading possible.
type QuizAttempt struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Token     string         `gorm:"size:36;not null;uniqueIndex" json:"token"`
	UserID    uint64         `gorm:"not null;index" json:"user_id"`
	Grader    string         `gorm:"size:50;not null" json:"grader"`
	CardIDs   datatypes.JSON `gorm:"type:json" json:"card_ids"`
	CreatedAt time.Time      `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName overrides the table name for QuizAttempt
func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
