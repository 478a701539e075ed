package repositoryImp

import (
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/report/repository"
	"kubeterra/pkg/scope"
)

type reportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReportRepository { return &reportRepo{db} }

func (r *reportRepo) Create(rep *entities.Report) error { return r.db.Create(rep).Error }

func (r *reportRepo) List(req scope.Requester) ([]entities.Report, error) {
	var out []entities.Report
	if err := r.db.Scopes(scope.Reports(req)).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reportRepo) FindByID(id string, req scope.Requester) (*entities.Report, error) {
	var rep entities.Report
	if err := r.db.Scopes(scope.Reports(req)).Where("id = ?", id).First(&rep).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}
