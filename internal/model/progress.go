package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressRecord accumulates study results per (user, collection) pair. It is
// created lazily on the first finalized session for that collection and only
// ever grows: total_quizzes by one per session, correct_answers by the
// session's correct count.
type ProgressRecord struct {
	ProgressID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_user_collection,unique" json:"-"`
	CollectionID   uuid.UUID `gorm:"type:uuid;not null;index:idx_user_collection,unique" json:"collection_id"`
	TotalQuizzes   int       `gorm:"not null;default:0" json:"total_quizzes"`
	CorrectAnswers int       `gorm:"not null;default:0" json:"correct_answers"`
	LastStudied    time.Time `gorm:"not null" json:"last_studied"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}
