package serviceImp

import (
	"context"
	"math"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/dashboard/service"
	"kubeterra/pkg/scope"
)

type dashSvc struct{ db *gorm.DB }

func New(db *gorm.DB) service.DashboardService { return &dashSvc{db} }

// healthRate formats healthy/total as a percentage with one decimal.
// Reported as "0" when there are no animals at all.
func healthRate(healthy, total int64) string {
	if total == 0 {
		return "0"
	}
	rate := math.Round(float64(healthy)/float64(total)*1000) / 10
	return strconv.FormatFloat(rate, 'f', 1, 64)
}

func (s *dashSvc) Farm(ctx context.Context, r scope.Requester) (*service.FarmDashboard, error) {
	out := &service.FarmDashboard{}
	g, gctx := errgroup.WithContext(ctx)

	animals := func(dst *int64, status string) func() error {
		return func() error {
			q := s.db.WithContext(gctx).Model(&entities.Animal{}).Scopes(scope.Animals(r))
			if status != "" {
				q = q.Where("status = ?", status)
			}
			return q.Count(dst).Error
		}
	}
	g.Go(animals(&out.TotalAnimals, ""))
	g.Go(animals(&out.HealthyAnimals, entities.AnimalHealthy))
	g.Go(animals(&out.SickAnimals, entities.AnimalSick))
	g.Go(animals(&out.MissingAnimals, entities.AnimalMissing))

	g.Go(func() error {
		return s.db.WithContext(gctx).Scopes(scope.Herds(r)).
			Order("updated_at DESC").Limit(10).Find(&out.RecentHerds).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Scopes(scope.Alerts(r)).
			Where("module = ? AND status <> ?", entities.ModuleFarm, entities.AlertResolved).
			Order("created_at DESC").Limit(5).Find(&out.RecentAlerts).Error
	})
	g.Go(func() error {
		cut := time.Now().AddDate(0, 0, -7)
		return s.db.WithContext(gctx).Model(&entities.Activity{}).Scopes(scope.Activities(r)).
			Where("module = ? AND created_at >= ?", entities.ModuleFarm, cut).
			Select("type, COUNT(*) AS count").Group("type").Scan(&out.HealthEvents).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.HealthRate = healthRate(out.HealthyAnimals, out.TotalAnimals)
	return out, nil
}

func (s *dashSvc) Park(ctx context.Context, r scope.Requester) (*service.ParkDashboard, error) {
	out := &service.ParkDashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&entities.Park{}).Scopes(scope.Parks(r)).
			Count(&out.ParkCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&entities.WildlifePopulation{}).Scopes(scope.Populations(r)).
			Distinct("species").Count(&out.SpeciesCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&entities.Patrol{}).Scopes(scope.Patrols(r)).
			Where("status = ?", entities.PatrolInProgress).Count(&out.ActivePatrols).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Scopes(scope.Incidents(r)).
			Where("status <> ?", entities.IncidentResolved).
			Order("reported_at DESC").Limit(5).Find(&out.RecentIncidents).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Scopes(scope.Populations(r)).
			Order("estimated_count DESC").Limit(10).Find(&out.TopPopulations).Error
	})
	g.Go(func() error {
		cut := time.Now().AddDate(0, 0, -30)
		return s.db.WithContext(gctx).Model(&entities.WildlifeSighting{}).Scopes(scope.Sightings(r)).
			Joins("JOIN wildlife_populations ON wildlife_populations.id = wildlife_sightings.population_id").
			Where("wildlife_sightings.sighted_at >= ?", cut).
			Select("wildlife_sightings.population_id AS population_id, wildlife_populations.species AS species, SUM(wildlife_sightings.count) AS total").
			Group("wildlife_sightings.population_id, wildlife_populations.species").
			Scan(&out.SightingTrends).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *dashSvc) Land(ctx context.Context) (*service.LandDashboard, error) {
	out := &service.LandDashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&entities.LandZone{}).Count(&out.TotalZones).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&entities.LandZone{}).
			Where("degradation_level < ?", entities.DegradationHealthyBelow).
			Count(&out.HealthyZones).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&entities.LandZone{}).
			Where("degradation_level >= ?", entities.DegradationDegradedFrom).
			Count(&out.DegradedZones).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Preload("Zone").
			Order("detected_at DESC").Limit(5).Find(&out.RecentChanges).Error
	})
	g.Go(func() error {
		cut := time.Now().AddDate(-1, 0, 0)
		return s.db.WithContext(gctx).Model(&entities.LandSurvey{}).
			Where("survey_date >= ?", cut).
			Select("zone_id, AVG(ndvi) AS avg_ndvi, AVG(health_score) AS avg_health_score").
			Group("zone_id").Scan(&out.ZoneHealth).Error
	})
	g.Go(func() error {
		zones, surveys, err := s.zonesWithLatestSurvey(gctx, 20)
		if err != nil {
			return err
		}
		out.Zones = make([]service.ZoneWithSurvey, 0, len(zones))
		for _, z := range zones {
			zs := service.ZoneWithSurvey{Zone: z}
			if sv, ok := surveys[z.ID]; ok {
				latest := sv
				zs.LatestSurvey = &latest
			}
			out.Zones = append(out.Zones, zs)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// zonesWithLatestSurvey loads up to limit zones plus the newest survey per
// zone in a single extra query.
func (s *dashSvc) zonesWithLatestSurvey(ctx context.Context, limit int) ([]entities.LandZone, map[string]entities.LandSurvey, error) {
	var zones []entities.LandZone
	if err := s.db.WithContext(ctx).Order("updated_at DESC").Limit(limit).Find(&zones).Error; err != nil {
		return nil, nil, err
	}
	if len(zones) == 0 {
		return zones, nil, nil
	}
	ids := make([]string, len(zones))
	for i, z := range zones {
		ids[i] = z.ID
	}
	var latest []entities.LandSurvey
	sub := s.db.Model(&entities.LandSurvey{}).
		Select("zone_id, MAX(survey_date) AS survey_date").
		Where("zone_id IN ?", ids).Group("zone_id")
	if err := s.db.WithContext(ctx).
		Where("(zone_id, survey_date) IN (?)", sub).
		Find(&latest).Error; err != nil {
		return nil, nil, err
	}
	byZone := make(map[string]entities.LandSurvey, len(latest))
	for _, sv := range latest {
		byZone[sv.ZoneID] = sv
	}
	return zones, byZone, nil
}

func (s *dashSvc) Overview(ctx context.Context, r scope.Requester) (*service.Overview, error) {
	out := &service.Overview{}
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, model any, sc func(*gorm.DB) *gorm.DB) func() error {
		return func() error {
			return s.db.WithContext(gctx).Model(model).Scopes(sc).Count(dst).Error
		}
	}
	g.Go(count(&out.Farms, &entities.Farm{}, scope.Farms(r)))
	g.Go(count(&out.Herds, &entities.Herd{}, scope.Herds(r)))
	g.Go(count(&out.Animals, &entities.Animal{}, scope.Animals(r)))
	g.Go(count(&out.Parks, &entities.Park{}, scope.Parks(r)))
	g.Go(count(&out.Populations, &entities.WildlifePopulation{}, scope.Populations(r)))
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&entities.LandZone{}).Count(&out.LandZones).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&entities.Alert{}).Scopes(scope.Alerts(r)).
			Where("status <> ?", entities.AlertResolved).Count(&out.UnresolvedAlerts).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Scopes(scope.Activities(r)).
			Order("created_at DESC").Limit(10).Find(&out.RecentActivities).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
