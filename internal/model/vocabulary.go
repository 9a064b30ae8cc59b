package model

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyEntry is a single word with its meaning. CollectionID is nullable:
// a NULL value means the entry is uncategorized. Duplicate words are allowed.
type VocabularyEntry struct {
	VocabID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"vocab_id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	CollectionID *uuid.UUID `gorm:"type:uuid;index" json:"collection_id,omitempty"`
	Word         string     `gorm:"not null" json:"word"`
	Meaning      string     `gorm:"not null" json:"meaning"`
	Example      *string    `json:"example,omitempty"`
	Mastered     bool       `gorm:"not null;default:false" json:"mastered"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (VocabularyEntry) TableName() string {
	return "vocabulary_entries"
}

// PostVocabularyRequest creates a single entry.
type PostVocabularyRequest struct {
	Word         string     `json:"word" validate:"required,min=1,max=255"`
	Meaning      string     `json:"meaning" validate:"required,min=1,max=1000"`
	Example      *string    `json:"example,omitempty" validate:"omitempty,max=1000"`
	CollectionID *uuid.UUID `json:"collection_id,omitempty"`
}

// PutVocabularyRequest replaces the mutable fields of an entry.
type PutVocabularyRequest struct {
	Word         string     `json:"word" validate:"required,min=1,max=255"`
	Meaning      string     `json:"meaning" validate:"required,min=1,max=1000"`
	Example      *string    `json:"example,omitempty" validate:"omitempty,max=1000"`
	CollectionID *uuid.UUID `json:"collection_id,omitempty"`
}

// PatchMasteredRequest toggles the manual mastery flag.
type PatchMasteredRequest struct {
	Mastered *bool `json:"mastered" validate:"required"`
}

// ImportEntryRequest is one pre-parsed triple in a bulk import.
type ImportEntryRequest struct {
	Word    string `json:"word" validate:"required,min=1,max=255"`
	Meaning string `json:"meaning" validate:"required,min=1,max=1000"`
	Example string `json:"example,omitempty" validate:"omitempty,max=1000"`
}

// ImportVocabularyRequest is the body of POST /vocabulary/import.
type ImportVocabularyRequest struct {
	Vocabulary   []ImportEntryRequest `json:"vocabulary" validate:"required,min=1,dive"`
	CollectionID *uuid.UUID           `json:"collection_id,omitempty"`
}

// ImportResponse reports how many entries a bulk import wrote.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ImportPreviewRequest is the body of POST /vocabulary/import/preview: raw
// user input parsed into triples plus row-level errors, nothing persisted.
type ImportPreviewRequest struct {
	Format    string `json:"format" validate:"required,oneof=csv json"`
	Data      string `json:"data" validate:"required"`
	Delimiter string `json:"delimiter,omitempty" validate:"omitempty,len=1"`
}
