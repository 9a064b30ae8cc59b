package model

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a user-defined named group of vocabulary entries. Deleting a
// collection detaches its entries (collection_id set to NULL); it never
// cascades into vocabulary rows.
type Collection struct {
	CollectionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"collection_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Description  *string   `json:"description,omitempty"`
	Color        string    `gorm:"type:varchar(20)" json:"color"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Collection) TableName() string {
	return "collections"
}

// PostCollectionRequest creates a collection.
type PostCollectionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Color       string  `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// PutCollectionRequest replaces the mutable fields of a collection.
type PutCollectionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Color       string  `json:"color,omitempty" validate:"omitempty,hexcolor"`
}
