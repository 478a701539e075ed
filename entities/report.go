package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is a stored snapshot supplied by the caller. DataSnapshot and
// ChartPayload are persisted verbatim; the server never recomputes them.
type Report struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	Title         string          `json:"title"`
	Type          string          `json:"type"`                // SUMMARY|TREND|INCIDENT|CUSTOM
	Module        string          `gorm:"index" json:"module"` // farm|park|land
	PeriodStart   *time.Time      `json:"periodStart"`
	PeriodEnd     *time.Time      `json:"periodEnd"`
	DataSnapshot  json.RawMessage `gorm:"type:text" json:"dataSnapshot"`
	ChartPayload  json.RawMessage `gorm:"type:text" json:"chartPayload,omitempty"`
	GeneratedByID string          `gorm:"index" json:"generatedById"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
