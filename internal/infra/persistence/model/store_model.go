package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
// The 'location' geography and 'search' tsvector columns are generated by
// the database from the fields below and are never written by GORM.
type StoreModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key"`
	Name        string                      `gorm:"type:varchar(200);not null"`
	Slug        string                      `gorm:"type:varchar(255);not null;uniqueIndex:idx_stores_slug"`
	Description string                      `gorm:"type:text;not null;default:''"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Longitude   float64                     `gorm:"type:double precision;not null"`
	Latitude    float64                     `gorm:"type:double precision;not null"`
	Address     string                      `gorm:"type:text;not null"`
	Photo       string                      `gorm:"type:varchar(255);not null;default:''"`
	AuthorID    uuid.UUID                   `gorm:"type:uuid;not null;index:idx_stores_author"`
	CreatedAt   time.Time                   `gorm:"not null;index:idx_stores_created_at"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
