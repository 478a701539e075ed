package repository

import (
	"kubeterra/entities"
	"kubeterra/pkg/scope"
)

// ListFilter narrows alert listings; empty fields match everything.
type ListFilter struct {
	Status   string
	Severity string
	Module   string
}

// StatusCount / SeverityCount rows back GET /api/alerts/stats.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type SeverityCount struct {
	Severity string `json:"severity"`
	Count    int64  `json:"count"`
}

type Stats struct {
	Total      int64           `json:"total"`
	Unresolved int64           `json:"unresolved"`
	ByStatus   []StatusCount   `json:"byStatus"`
	BySeverity []SeverityCount `json:"bySeverity"`
}

type AlertRepository interface {
	Create(a *entities.Alert) error
	List(f ListFilter, r scope.Requester) ([]entities.Alert, error)
	FindByID(id string, r scope.Requester) (*entities.Alert, error)
	// Save persists lifecycle mutations made by the controller.
	Save(a *entities.Alert) error
	Stats(r scope.Requester) (*Stats, error)
}
