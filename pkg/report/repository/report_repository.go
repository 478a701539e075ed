package repository

import (
	"kubeterra/entities"
	"kubeterra/pkg/scope"
)

type ReportRepository interface {
	Create(rep *entities.Report) error
	List(r scope.Requester) ([]entities.Report, error)
	FindByID(id string, r scope.Requester) (*entities.Report, error)
}
