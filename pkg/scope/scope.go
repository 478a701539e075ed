// Package scope builds the role-based visibility predicates applied to every
// list/get/aggregate query. ADMIN sees all rows; any other role sees only
// rows it owns, manages, or is assigned, directly or through a parent chain.
// Land zones carry no owner and are never scoped.
package scope

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"kubeterra/entities"
)

// Requester identifies who is asking.
type Requester struct {
	ID   string
	Role string
}

// FromContext reads the requester set by the auth middleware.
func FromContext(c echo.Context) Requester {
	uid, _ := c.Get("uid").(string)
	role, _ := c.Get("role").(string)
	return Requester{ID: uid, Role: role}
}

func (r Requester) admin() bool { return r.Role == entities.RoleAdmin }

func unscoped(db *gorm.DB) *gorm.DB { return db }

// Farms restricts to farms owned by the requester.
func Farms(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", r.ID)
	}
}

// Herds restricts to herds on the requester's farms.
func Herds(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("farm_id IN (SELECT id FROM farms WHERE owner_id = ?)", r.ID)
	}
}

// Animals restricts through the herd→farm chain.
func Animals(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("herd_id IN (SELECT id FROM herds WHERE farm_id IN (SELECT id FROM farms WHERE owner_id = ?))", r.ID)
	}
}

// PastureZones restricts to zones on the requester's farms.
func PastureZones(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("farm_id IN (SELECT id FROM farms WHERE owner_id = ?)", r.ID)
	}
}

// Parks restricts to parks managed by the requester.
func Parks(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("manager_id = ?", r.ID)
	}
}

// Populations restricts to wildlife populations in managed parks.
func Populations(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("park_id IN (SELECT id FROM parks WHERE manager_id = ?)", r.ID)
	}
}

// Sightings restricts through the population→park chain.
func Sightings(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("population_id IN (SELECT id FROM wildlife_populations WHERE park_id IN (SELECT id FROM parks WHERE manager_id = ?))", r.ID)
	}
}

// Patrols restricts to patrols in managed parks.
func Patrols(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("park_id IN (SELECT id FROM parks WHERE manager_id = ?)", r.ID)
	}
}

// Incidents restricts to incidents in managed parks.
func Incidents(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("park_id IN (SELECT id FROM parks WHERE manager_id = ?)", r.ID)
	}
}

// Alerts restricts to alerts assigned to the requester or linked to one of
// the requester's farms.
func Alerts(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("assigned_to_id = ? OR farm_id IN (SELECT id FROM farms WHERE owner_id = ?)", r.ID, r.ID)
	}
}

// Reports restricts to reports generated by the requester.
func Reports(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("generated_by_id = ?", r.ID)
	}
}

// Activities restricts to the requester's own activity trail.
func Activities(r Requester) func(*gorm.DB) *gorm.DB {
	if r.admin() {
		return unscoped
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", r.ID)
	}
}
