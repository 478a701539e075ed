package service

import (
	"context"

	"kubeterra/entities"
	"kubeterra/pkg/scope"
)

// FarmDashboard aggregates the livestock picture for the requester's farms.
type FarmDashboard struct {
	TotalAnimals   int64               `json:"totalAnimals"`
	HealthyAnimals int64               `json:"healthyAnimals"`
	SickAnimals    int64               `json:"sickAnimals"`
	MissingAnimals int64               `json:"missingAnimals"`
	HealthRate     string              `json:"healthRate"` // percent, one decimal; "0" when no animals
	RecentHerds    []entities.Herd     `json:"recentHerds"`
	RecentAlerts   []entities.Alert    `json:"recentAlerts"`
	HealthEvents   []ActivityTypeCount `json:"healthEvents"` // 7-day breakdown
}

type ActivityTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// ParkDashboard aggregates wildlife and patrol data for managed parks.
type ParkDashboard struct {
	ParkCount       int64                         `json:"parkCount"`
	SpeciesCount    int64                         `json:"speciesCount"`
	ActivePatrols   int64                         `json:"activePatrols"`
	RecentIncidents []entities.Incident           `json:"recentIncidents"`
	TopPopulations  []entities.WildlifePopulation `json:"topPopulations"`
	SightingTrends  []SightingTrend               `json:"sightingTrends"` // 30-day sums
}

type SightingTrend struct {
	PopulationID string `json:"populationId"`
	Species      string `json:"species"`
	Total        int64  `json:"total"`
}

// LandDashboard is never owner-scoped; land zones have no single owner.
type LandDashboard struct {
	TotalZones    int64                 `json:"totalZones"`
	HealthyZones  int64                 `json:"healthyZones"`  // degradationLevel < 30
	DegradedZones int64                 `json:"degradedZones"` // degradationLevel >= 60
	RecentChanges []entities.LandChange `json:"recentChanges"`
	ZoneHealth    []ZoneHealth          `json:"zoneHealth"` // 12-month averages
	Zones         []ZoneWithSurvey      `json:"zones"`
}

type ZoneHealth struct {
	ZoneID         string  `json:"zoneId"`
	AvgNDVI        float64 `json:"avgNdvi"`
	AvgHealthScore float64 `json:"avgHealthScore"`
}

type ZoneWithSurvey struct {
	Zone         entities.LandZone    `json:"zone"`
	LatestSurvey *entities.LandSurvey `json:"latestSurvey"`
}

// Overview combines per-module counts with the recent activity feed.
type Overview struct {
	Farms            int64               `json:"farms"`
	Herds            int64               `json:"herds"`
	Animals          int64               `json:"animals"`
	Parks            int64               `json:"parks"`
	Populations      int64               `json:"wildlifePopulations"`
	LandZones        int64               `json:"landZones"`
	UnresolvedAlerts int64               `json:"unresolvedAlerts"`
	RecentActivities []entities.Activity `json:"recentActivities"`
}

// DashboardService answers the four aggregation endpoints. Each call fans its
// constituent queries out concurrently and fails as a whole if any one fails.
type DashboardService interface {
	Farm(ctx context.Context, r scope.Requester) (*FarmDashboard, error)
	Park(ctx context.Context, r scope.Requester) (*ParkDashboard, error)
	Land(ctx context.Context) (*LandDashboard, error)
	Overview(ctx context.Context, r scope.Requester) (*Overview, error)
}
