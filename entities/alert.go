package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alert statuses. Transitions are driven by explicit status updates only;
// the sequence NEW→ACKNOWLEDGED→IN_PROGRESS→RESOLVED is a convention, not a
// state machine.
const (
	AlertNew          = "NEW"
	AlertAcknowledged = "ACKNOWLEDGED"
	AlertInProgress   = "IN_PROGRESS"
	AlertResolved     = "RESOLVED"
)

// Alert severities.
const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)

// Module tags used by alerts, reports and activities.
const (
	ModuleFarm = "farm"
	ModulePark = "park"
	ModuleLand = "land"
)

type Alert struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Type         string     `json:"type"`
	Severity     string     `gorm:"index" json:"severity"` // LOW|MEDIUM|HIGH|CRITICAL
	Status       string     `gorm:"index" json:"status"`   // NEW|ACKNOWLEDGED|IN_PROGRESS|RESOLVED
	Module       string     `gorm:"index" json:"module"`   // farm|park|land
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	EntityID     *string    `json:"entityId"`
	FarmID       *string    `gorm:"index" json:"farmId"`
	AssignedToID *string    `gorm:"index" json:"assignedToId"`
	ResolvedByID *string    `json:"resolvedById"`
	ResolvedAt   *time.Time `json:"resolvedAt"`
	CreatedAt    time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
