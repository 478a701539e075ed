package repositoryImp

import (
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/alert/repository"
	"kubeterra/pkg/scope"
)

type alertRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AlertRepository { return &alertRepo{db} }

func (r *alertRepo) Create(a *entities.Alert) error { return r.db.Create(a).Error }

func (r *alertRepo) List(f repository.ListFilter, req scope.Requester) ([]entities.Alert, error) {
	q := r.db.Scopes(scope.Alerts(req))
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Severity != "" {
		q = q.Where("severity = ?", f.Severity)
	}
	if f.Module != "" {
		q = q.Where("module = ?", f.Module)
	}
	var out []entities.Alert
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *alertRepo) FindByID(id string, req scope.Requester) (*entities.Alert, error) {
	var a entities.Alert
	if err := r.db.Scopes(scope.Alerts(req)).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *alertRepo) Save(a *entities.Alert) error { return r.db.Save(a).Error }

func (r *alertRepo) Stats(req scope.Requester) (*repository.Stats, error) {
	s := &repository.Stats{}
	if err := r.db.Model(&entities.Alert{}).Scopes(scope.Alerts(req)).Count(&s.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Alert{}).Scopes(scope.Alerts(req)).
		Where("status <> ?", entities.AlertResolved).Count(&s.Unresolved).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Alert{}).Scopes(scope.Alerts(req)).
		Select("status, COUNT(*) AS count").Group("status").Scan(&s.ByStatus).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Alert{}).Scopes(scope.Alerts(req)).
		Select("severity, COUNT(*) AS count").Group("severity").Scan(&s.BySeverity).Error; err != nil {
		return nil, err
	}
	return s, nil
}
