package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles known to the platform.
const (
	RoleAdmin   = "ADMIN"
	RoleFarmer  = "FARMER"
	RoleRanger  = "RANGER"
	RoleAnalyst = "ANALYST"
)

// Account statuses.
const (
	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
	StatusInactive  = "INACTIVE"
)

// Service entitlements a user may subscribe to.
const (
	ServiceFarm = "KUBE_FARM"
	ServicePark = "KUBE_PARK"
	ServiceLand = "KUBE_LAND"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Role         string    `gorm:"index" json:"role"`   // ADMIN|FARMER|RANGER|ANALYST
	Status       string    `gorm:"index" json:"status"` // ACTIVE|SUSPENDED|INACTIVE
	BusinessType string    `json:"businessType"`        // B2C|B2B
	CompanyName  string    `json:"companyName,omitempty"`
	Services     []string  `gorm:"serializer:json" json:"services"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
