package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is an audit-trail row recorded after successful mutations.
type Activity struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"userId"`
	Type      string    `gorm:"index" json:"type"` // e.g. FARM_CREATED, ALERT_RESOLVED
	Action    string    `json:"action"`            // create|update|assign|resolve
	Module    string    `gorm:"index" json:"module"`
	EntityID  *string   `json:"entityId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
