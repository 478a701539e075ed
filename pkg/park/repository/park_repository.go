package repository

import (
	"kubeterra/entities"
	"kubeterra/pkg/scope"
)

type ParkRepository interface {
	Create(p *entities.Park) error
	List(r scope.Requester) ([]entities.Park, error)
	FindByID(id string, r scope.Requester) (*entities.Park, error)

	CreatePopulation(w *entities.WildlifePopulation) error
	ListPopulations(parkID string, r scope.Requester) ([]entities.WildlifePopulation, error)

	CreatePatrol(p *entities.Patrol) error
	ListPatrols(parkID string, r scope.Requester) ([]entities.Patrol, error)

	CreateIncident(i *entities.Incident) error
	ListIncidents(parkID string, r scope.Requester) ([]entities.Incident, error)
}
