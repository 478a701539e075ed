package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Animal health statuses.
const (
	AnimalHealthy = "HEALTHY"
	AnimalSick    = "SICK"
	AnimalMissing = "MISSING"
)

type Farm struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	OwnerID      string    `gorm:"index" json:"ownerId"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	AreaHectares float64   `json:"areaHectares"`
	Status       string    `gorm:"index" json:"status"` // ACTIVE|INACTIVE
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (f *Farm) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type Herd struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	FarmID       string    `gorm:"index" json:"farmId"`
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	TotalCount   int       `json:"totalCount"`
	HealthyCount int       `json:"healthyCount"`
	SickCount    int       `json:"sickCount"`
	MissingCount int       `json:"missingCount"`
	RiskScore    float64   `json:"riskScore"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (h *Herd) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

type Animal struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	HerdID        string     `gorm:"index" json:"herdId"`
	TagID         string     `gorm:"uniqueIndex" json:"tagId"`
	Species       string     `json:"species"`
	Breed         string     `json:"breed"`
	Status        string     `gorm:"index" json:"status"` // HEALTHY|SICK|MISSING
	LastLatitude  *float64   `json:"lastLatitude"`
	LastLongitude *float64   `json:"lastLongitude"`
	LastSeenAt    *time.Time `json:"lastSeenAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (a *Animal) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type PastureZone struct {
	ID               string      `gorm:"primaryKey" json:"id"`
	FarmID           string      `gorm:"index" json:"farmId"`
	Name             string      `json:"name"`
	Boundary         [][]float64 `gorm:"serializer:json" json:"boundary"` // [lat,lng] ring
	VegetationIndex  float64     `json:"vegetationIndex"`
	SoilMoisture     float64     `json:"soilMoisture"`
	CarryingCapacity int         `json:"carryingCapacity"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

func (z *PastureZone) BeforeCreate(tx *gorm.DB) error {
	if z.ID == "" {
		z.ID = uuid.NewString()
	}
	return nil
}
