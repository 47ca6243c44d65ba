package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Reviews are written by the review service; the catalog only reads them.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_store"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text;not null;default:''"`
	Rating    int       `gorm:"type:smallint;not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	CreatedAt time.Time `gorm:"not null"`

	Store *StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
