package models

import (
	"time"
)

// Score is the best quiz result a grader has recorded against one
// owner's deck. UserID is the deck owner; Belongs is the username of
// the grader who took the quiz. The composite unique index backs the
// at-most-one-row-per-(owner, grader) invariant at the database level,
// so two concurrent first submissions cannot both insert.
type Score struct {
	ID       uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Score    int       `gorm:"not null" json:"score"`
	ScoredAt time.Time `gorm:"not null" json:"scored_at"`
	Belongs  string    `gorm:"size:50;not null;index:idx_owner_grader,unique" json:"belongs"`
	UserID   uint64    `gorm:"not null;index:idx_owner_grader,unique" json:"user_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName overrides the table name for Score
func (Score) TableName() string {
	return "scores"
}
