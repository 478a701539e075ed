package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Degradation thresholds used by the land dashboard. Zones between the two
// bounds are counted in the total but in neither bucket.
const (
	DegradationHealthyBelow = 30.0
	DegradationDegradedFrom = 60.0
)

type LandZone struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	Name             string    `json:"name"`
	Region           string    `gorm:"index" json:"region"`
	District         string    `json:"district"`
	LandUseType      string    `json:"landUseType"` // CROPLAND|FOREST|GRASSLAND|URBAN|WETLAND
	AreaKm2          float64   `json:"areaKm2"`
	VegetationIndex  float64   `json:"vegetationIndex"`
	SoilQuality      float64   `json:"soilQuality"`
	DegradationLevel float64   `json:"degradationLevel"` // 0..100
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (z *LandZone) BeforeCreate(tx *gorm.DB) error {
	if z.ID == "" {
		z.ID = uuid.NewString()
	}
	return nil
}

type LandSurvey struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ZoneID      string    `gorm:"index" json:"zoneId"`
	NDVI        float64   `json:"ndvi"`
	Biomass     float64   `json:"biomass"`
	CanopyCover float64   `json:"canopyCover"`
	HealthScore float64   `json:"healthScore"`
	SurveyDate  time.Time `gorm:"index" json:"surveyDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *LandSurvey) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type LandChange struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	ZoneID          string    `gorm:"index" json:"zoneId"`
	Zone            *LandZone `gorm:"foreignKey:ZoneID" json:"zone,omitempty"`
	ChangeType      string    `json:"changeType"` // DEFORESTATION|EROSION|URBANIZATION|RECOVERY
	Severity        string    `json:"severity"`
	AffectedAreaKm2 float64   `json:"affectedAreaKm2"`
	DetectedAt      time.Time `gorm:"index" json:"detectedAt"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (c *LandChange) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
