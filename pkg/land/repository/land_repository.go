package repository

import "kubeterra/entities"

// Land zones have no single owner, so land queries take no requester.
type LandRepository interface {
	CreateZone(z *entities.LandZone) error
	ListZones() ([]entities.LandZone, error)
	FindZoneByID(id string) (*entities.LandZone, error)

	CreateSurvey(s *entities.LandSurvey) error
	ListSurveys(zoneID string) ([]entities.LandSurvey, error)

	CreateChange(ch *entities.LandChange) error
	ListChanges(zoneID string) ([]entities.LandChange, error)
}
