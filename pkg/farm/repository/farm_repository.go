package repository

import (
	"kubeterra/entities"
	"kubeterra/pkg/scope"
)

type FarmRepository interface {
	Create(f *entities.Farm) error
	List(r scope.Requester) ([]entities.Farm, error)
	FindByID(id string, r scope.Requester) (*entities.Farm, error)

	CreateHerd(h *entities.Herd) error
	ListHerds(farmID string, r scope.Requester) ([]entities.Herd, error)

	CreateZone(z *entities.PastureZone) error
	ListZones(farmID string, r scope.Requester) ([]entities.PastureZone, error)
}
