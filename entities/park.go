package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patrol statuses.
const (
	PatrolScheduled  = "SCHEDULED"
	PatrolInProgress = "IN_PROGRESS"
	PatrolCompleted  = "COMPLETED"
	PatrolCancelled  = "CANCELLED"
)

// Incident statuses.
const (
	IncidentOpen          = "OPEN"
	IncidentInvestigating = "INVESTIGATING"
	IncidentResolved      = "RESOLVED"
)

type Park struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ManagerID string    `gorm:"index" json:"managerId"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	AreaKm2   float64   `json:"areaKm2"`
	Status    string    `gorm:"index" json:"status"` // ACTIVE|INACTIVE
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Park) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type WildlifePopulation struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	ParkID             string    `gorm:"index" json:"parkId"`
	Species            string    `gorm:"index" json:"species"`
	EstimatedCount     int       `json:"estimatedCount"`
	LastCensusCount    int       `json:"lastCensusCount"`
	Trend              string    `json:"trend"` // INCREASING|STABLE|DECLINING
	ConservationStatus string    `json:"conservationStatus"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (w *WildlifePopulation) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

type WildlifeSighting struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	PopulationID string    `gorm:"index" json:"populationId"`
	Count        int       `json:"count"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Behavior     string    `json:"behavior"`
	Confidence   float64   `json:"confidence"` // 0..1
	SightedAt    time.Time `gorm:"index" json:"sightedAt"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *WildlifeSighting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type Patrol struct {
	ID             string      `gorm:"primaryKey" json:"id"`
	ParkID         string      `gorm:"index" json:"parkId"`
	Name           string      `json:"name"`
	Route          [][]float64 `gorm:"serializer:json" json:"route"` // [lat,lng] waypoints
	ScheduledStart time.Time   `json:"scheduledStart"`
	ScheduledEnd   time.Time   `json:"scheduledEnd"`
	ActualStart    *time.Time  `json:"actualStart"`
	ActualEnd      *time.Time  `json:"actualEnd"`
	Status         string      `gorm:"index" json:"status"` // SCHEDULED|IN_PROGRESS|COMPLETED|CANCELLED
	Rangers        []string    `gorm:"serializer:json" json:"rangers"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (p *Patrol) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Incident struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ParkID      string    `gorm:"index" json:"parkId"`
	PatrolID    *string   `gorm:"index" json:"patrolId"`
	Type        string    `json:"type"` // POACHING|FIRE|INJURY|TRESPASS|OTHER
	Severity    string    `json:"severity"`
	Status      string    `gorm:"index" json:"status"` // OPEN|INVESTIGATING|RESOLVED
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	ReportedAt  time.Time `gorm:"index" json:"reportedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (i *Incident) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
