package model

import (
	"time"

	"github.com/google/uuid"
)

// StudyMode tags which learning mode produced a result.
type StudyMode string

const (
	ModeQuiz      StudyMode = "quiz"
	ModeFlashcard StudyMode = "flashcard"
	ModeSpelling  StudyMode = "spelling"
)

func (m StudyMode) Valid() bool {
	switch m {
	case ModeQuiz, ModeFlashcard, ModeSpelling:
		return true
	}
	return false
}

// QuizResult is the immutable record of one completed study session. Score is
// computed once at completion and never recomputed afterwards.
type QuizResult struct {
	ResultID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"result_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	CollectionID   *uuid.UUID `gorm:"type:uuid;index" json:"collection_id,omitempty"`
	Mode           StudyMode  `gorm:"type:varchar(20);not null" json:"mode"`
	TotalQuestions int        `gorm:"not null" json:"total_questions"`
	CorrectAnswers int        `gorm:"not null" json:"correct_answers"`
	Score          float64    `gorm:"not null" json:"score"`
	CompletedAt    time.Time  `gorm:"not null;index" json:"completed_at"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

// SubmitResultRequest is the body of POST /quiz-results. The server
// recomputes the score from the counts so the stored invariant
// score == correct/total*100 cannot drift on a buggy client.
type SubmitResultRequest struct {
	Mode           StudyMode  `json:"mode" validate:"required,oneof=quiz flashcard spelling"`
	TotalQuestions int        `json:"total_questions" validate:"required,min=1"`
	CorrectAnswers *int       `json:"correct_answers" validate:"required,min=0"`
	Score          float64    `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	CollectionID   *uuid.UUID `json:"collection_id,omitempty"`
}
