package repositoryImp

import (
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/park/repository"
	"kubeterra/pkg/scope"
)

type parkRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ParkRepository { return &parkRepo{db} }

func (r *parkRepo) Create(p *entities.Park) error { return r.db.Create(p).Error }

func (r *parkRepo) List(req scope.Requester) ([]entities.Park, error) {
	var out []entities.Park
	if err := r.db.Scopes(scope.Parks(req)).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *parkRepo) FindByID(id string, req scope.Requester) (*entities.Park, error) {
	var p entities.Park
	if err := r.db.Scopes(scope.Parks(req)).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *parkRepo) CreatePopulation(w *entities.WildlifePopulation) error {
	return r.db.Create(w).Error
}

func (r *parkRepo) ListPopulations(parkID string, req scope.Requester) ([]entities.WildlifePopulation, error) {
	var out []entities.WildlifePopulation
	if err := r.db.Scopes(scope.Populations(req)).Where("park_id = ?", parkID).Order("estimated_count DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *parkRepo) CreatePatrol(p *entities.Patrol) error { return r.db.Create(p).Error }

func (r *parkRepo) ListPatrols(parkID string, req scope.Requester) ([]entities.Patrol, error) {
	var out []entities.Patrol
	if err := r.db.Scopes(scope.Patrols(req)).Where("park_id = ?", parkID).Order("scheduled_start DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *parkRepo) CreateIncident(i *entities.Incident) error { return r.db.Create(i).Error }

func (r *parkRepo) ListIncidents(parkID string, req scope.Requester) ([]entities.Incident, error) {
	var out []entities.Incident
	if err := r.db.Scopes(scope.Incidents(req)).Where("park_id = ?", parkID).Order("reported_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
