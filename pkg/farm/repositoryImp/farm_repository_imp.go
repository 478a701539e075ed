package repositoryImp

import (
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/farm/repository"
	"kubeterra/pkg/scope"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(f *entities.Farm) error { return r.db.Create(f).Error }

func (r *farmRepo) List(req scope.Requester) ([]entities.Farm, error) {
	var out []entities.Farm
	if err := r.db.Scopes(scope.Farms(req)).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) FindByID(id string, req scope.Requester) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.Scopes(scope.Farms(req)).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) CreateHerd(h *entities.Herd) error { return r.db.Create(h).Error }

func (r *farmRepo) ListHerds(farmID string, req scope.Requester) ([]entities.Herd, error) {
	var out []entities.Herd
	if err := r.db.Scopes(scope.Herds(req)).Where("farm_id = ?", farmID).Order("updated_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) CreateZone(z *entities.PastureZone) error { return r.db.Create(z).Error }

func (r *farmRepo) ListZones(farmID string, req scope.Requester) ([]entities.PastureZone, error) {
	var out []entities.PastureZone
	if err := r.db.Scopes(scope.PastureZones(req)).Where("farm_id = ?", farmID).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
