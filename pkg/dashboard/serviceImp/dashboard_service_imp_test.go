package serviceImp

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kubeterra/database"
	"kubeterra/entities"
	"kubeterra/pkg/scope"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	return database.OpenSQLite(filepath.Join(t.TempDir(), "dash_test.db"))
}

func admin() scope.Requester {
	return scope.Requester{ID: "admin-1", Role: entities.RoleAdmin}
}

func TestHealthRateFormatting(t *testing.T) {
	assert.Equal(t, "0", healthRate(0, 0))
	assert.Equal(t, "100.0", healthRate(10, 10))
	assert.Equal(t, "50.0", healthRate(1, 2))
	assert.Equal(t, "66.7", healthRate(2, 3))
	assert.Equal(t, "33.3", healthRate(1, 3))
}

func seedFarmAnimals(t *testing.T, db *gorm.DB, ownerID string, healthy, sick, missing int) {
	t.Helper()
	f := entities.Farm{OwnerID: ownerID, Name: "Farm of " + ownerID, Status: entities.StatusActive}
	require.NoError(t, db.Create(&f).Error)
	h := entities.Herd{FarmID: f.ID, Name: "Herd of " + ownerID}
	require.NoError(t, db.Create(&h).Error)
	mk := func(status string, n int) {
		for i := 0; i < n; i++ {
			a := entities.Animal{
				HerdID: h.ID,
				Status: status,
				TagID:  fmt.Sprintf("%s-%s-%d", ownerID, status, i),
			}
			require.NoError(t, db.Create(&a).Error)
		}
	}
	mk(entities.AnimalHealthy, healthy)
	mk(entities.AnimalSick, sick)
	mk(entities.AnimalMissing, missing)
}

func TestFarmDashboardCountsAndRate(t *testing.T) {
	db := openDB(t)
	seedFarmAnimals(t, db, "farmer-a", 2, 1, 0)
	seedFarmAnimals(t, db, "farmer-b", 0, 0, 1)

	svc := New(db)

	// owner-scoped: farmer A only sees their 3 animals
	out, err := svc.Farm(context.Background(), scope.Requester{ID: "farmer-a", Role: entities.RoleFarmer})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.TotalAnimals)
	assert.Equal(t, int64(2), out.HealthyAnimals)
	assert.Equal(t, int64(1), out.SickAnimals)
	assert.Equal(t, int64(0), out.MissingAnimals)
	assert.Equal(t, "66.7", out.HealthRate)
	assert.Len(t, out.RecentHerds, 1)

	// admin sees everything
	all, err := svc.Farm(context.Background(), admin())
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.TotalAnimals)
	assert.Equal(t, "50.0", all.HealthRate)

	// a requester with no animals gets exactly "0"
	none, err := svc.Farm(context.Background(), scope.Requester{ID: "farmer-c", Role: entities.RoleFarmer})
	require.NoError(t, err)
	assert.Equal(t, int64(0), none.TotalAnimals)
	assert.Equal(t, "0", none.HealthRate)
}

func TestFarmDashboardRecentAlertsExcludeResolved(t *testing.T) {
	db := openDB(t)
	mk := func(status string) {
		require.NoError(t, db.Create(&entities.Alert{
			Type: "HEALTH", Severity: entities.SeverityHigh, Status: status,
			Module: entities.ModuleFarm, Title: status,
		}).Error)
	}
	mk(entities.AlertNew)
	mk(entities.AlertInProgress)
	mk(entities.AlertResolved)

	out, err := New(db).Farm(context.Background(), admin())
	require.NoError(t, err)
	require.Len(t, out.RecentAlerts, 2)
	for _, a := range out.RecentAlerts {
		assert.NotEqual(t, entities.AlertResolved, a.Status)
	}
}

func TestLandDashboardDegradationBuckets(t *testing.T) {
	db := openDB(t)
	mk := func(level float64) {
		require.NoError(t, db.Create(&entities.LandZone{
			Name: "zone", Region: "north", DegradationLevel: level,
		}).Error)
	}
	mk(0)
	mk(29.9) // healthy
	mk(30)   // open band: neither bucket
	mk(45)
	mk(59.9)
	mk(60) // degraded
	mk(88)

	out, err := New(db).Land(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.TotalZones)
	assert.Equal(t, int64(2), out.HealthyZones)
	assert.Equal(t, int64(2), out.DegradedZones)
	assert.Len(t, out.Zones, 7)
}

func TestLandDashboardLatestSurveyAndChanges(t *testing.T) {
	db := openDB(t)
	z := entities.LandZone{Name: "delta", Region: "south", DegradationLevel: 10}
	require.NoError(t, db.Create(&z).Error)

	old := entities.LandSurvey{ZoneID: z.ID, NDVI: 0.2, HealthScore: 40, SurveyDate: time.Now().AddDate(0, -6, 0)}
	newer := entities.LandSurvey{ZoneID: z.ID, NDVI: 0.6, HealthScore: 80, SurveyDate: time.Now().AddDate(0, -1, 0)}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&newer).Error)

	require.NoError(t, db.Create(&entities.LandChange{
		ZoneID: z.ID, ChangeType: "EROSION", Severity: entities.SeverityMedium,
		DetectedAt: time.Now(),
	}).Error)

	out, err := New(db).Land(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Zones, 1)
	require.NotNil(t, out.Zones[0].LatestSurvey)
	assert.InDelta(t, 0.6, out.Zones[0].LatestSurvey.NDVI, 1e-9)

	require.Len(t, out.ZoneHealth, 1)
	assert.InDelta(t, 0.4, out.ZoneHealth[0].AvgNDVI, 1e-9)
	assert.InDelta(t, 60, out.ZoneHealth[0].AvgHealthScore, 1e-9)

	require.Len(t, out.RecentChanges, 1)
	require.NotNil(t, out.RecentChanges[0].Zone)
	assert.Equal(t, "delta", out.RecentChanges[0].Zone.Name)
}

func TestParkDashboardAggregates(t *testing.T) {
	db := openDB(t)
	p := entities.Park{ManagerID: "ranger-1", Name: "Big Park", Status: entities.StatusActive}
	require.NoError(t, db.Create(&p).Error)

	elephants := entities.WildlifePopulation{ParkID: p.ID, Species: "elephant", EstimatedCount: 120}
	zebras := entities.WildlifePopulation{ParkID: p.ID, Species: "zebra", EstimatedCount: 300}
	require.NoError(t, db.Create(&elephants).Error)
	require.NoError(t, db.Create(&zebras).Error)

	require.NoError(t, db.Create(&entities.Patrol{ParkID: p.ID, Name: "dawn", Status: entities.PatrolInProgress}).Error)
	require.NoError(t, db.Create(&entities.Patrol{ParkID: p.ID, Name: "dusk", Status: entities.PatrolCompleted}).Error)

	require.NoError(t, db.Create(&entities.Incident{
		ParkID: p.ID, Type: "POACHING", Severity: entities.SeverityCritical,
		Status: entities.IncidentOpen, ReportedAt: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&entities.Incident{
		ParkID: p.ID, Type: "FIRE", Severity: entities.SeverityHigh,
		Status: entities.IncidentResolved, ReportedAt: time.Now(),
	}).Error)

	require.NoError(t, db.Create(&entities.WildlifeSighting{
		PopulationID: elephants.ID, Count: 9, SightedAt: time.Now().AddDate(0, 0, -3),
	}).Error)
	require.NoError(t, db.Create(&entities.WildlifeSighting{
		PopulationID: elephants.ID, Count: 4, SightedAt: time.Now().AddDate(0, 0, -10),
	}).Error)
	require.NoError(t, db.Create(&entities.WildlifeSighting{
		PopulationID: elephants.ID, Count: 99, SightedAt: time.Now().AddDate(0, 0, -45), // outside window
	}).Error)

	out, err := New(db).Park(context.Background(), scope.Requester{ID: "ranger-1", Role: entities.RoleRanger})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ParkCount)
	assert.Equal(t, int64(2), out.SpeciesCount)
	assert.Equal(t, int64(1), out.ActivePatrols)

	require.Len(t, out.RecentIncidents, 1)
	assert.Equal(t, "POACHING", out.RecentIncidents[0].Type)

	require.Len(t, out.TopPopulations, 2)
	assert.Equal(t, "zebra", out.TopPopulations[0].Species)

	require.Len(t, out.SightingTrends, 1)
	assert.Equal(t, "elephant", out.SightingTrends[0].Species)
	assert.Equal(t, int64(13), out.SightingTrends[0].Total)
}

func TestOverviewScopedCounts(t *testing.T) {
	db := openDB(t)
	seedFarmAnimals(t, db, "farmer-a", 1, 0, 0)
	seedFarmAnimals(t, db, "farmer-b", 1, 0, 0)
	require.NoError(t, db.Create(&entities.LandZone{Name: "z", Region: "r", DegradationLevel: 5}).Error)
	require.NoError(t, db.Create(&entities.Alert{
		Type: "X", Severity: entities.SeverityLow, Status: entities.AlertNew,
		Module: entities.ModuleFarm, Title: "unassigned",
	}).Error)
	require.NoError(t, db.Create(&entities.Activity{UserID: "farmer-a", Type: "FARM_CREATED", Action: "create", Module: entities.ModuleFarm}).Error)

	svc := New(db)

	mine, err := svc.Overview(context.Background(), scope.Requester{ID: "farmer-a", Role: entities.RoleFarmer})
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine.Farms)
	assert.Equal(t, int64(1), mine.Herds)
	assert.Equal(t, int64(1), mine.Animals)
	// land zones are global even for non-admins
	assert.Equal(t, int64(1), mine.LandZones)
	// the alert is neither assigned to A nor linked to A's farm
	assert.Equal(t, int64(0), mine.UnresolvedAlerts)
	assert.Len(t, mine.RecentActivities, 1)

	all, err := svc.Overview(context.Background(), admin())
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Farms)
	assert.Equal(t, int64(2), all.Animals)
	assert.Equal(t, int64(1), all.UnresolvedAlerts)
}
