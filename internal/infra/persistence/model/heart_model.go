package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreHeartModel is the GORM-specific struct for the 'store_hearts' table.
// One row per (user, store) pair marks the store as hearted by the user.
type StoreHeartModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_store_hearts_store"`
	CreatedAt time.Time `gorm:"not null"`

	Store *StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreHeartModel) TableName() string {
	return "store_hearts"
}
