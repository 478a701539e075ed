package repositoryImp

import (
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/land/repository"
)

type landRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LandRepository { return &landRepo{db} }

func (r *landRepo) CreateZone(z *entities.LandZone) error { return r.db.Create(z).Error }

func (r *landRepo) ListZones() ([]entities.LandZone, error) {
	var out []entities.LandZone
	if err := r.db.Order("region ASC, name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *landRepo) FindZoneByID(id string) (*entities.LandZone, error) {
	var z entities.LandZone
	if err := r.db.Where("id = ?", id).First(&z).Error; err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *landRepo) CreateSurvey(s *entities.LandSurvey) error { return r.db.Create(s).Error }

func (r *landRepo) ListSurveys(zoneID string) ([]entities.LandSurvey, error) {
	var out []entities.LandSurvey
	if err := r.db.Where("zone_id = ?", zoneID).Order("survey_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *landRepo) CreateChange(ch *entities.LandChange) error { return r.db.Create(ch).Error }

func (r *landRepo) ListChanges(zoneID string) ([]entities.LandChange, error) {
	var out []entities.LandChange
	if err := r.db.Where("zone_id = ?", zoneID).Order("detected_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
