package controllerImp

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/activity"
	repo "kubeterra/pkg/park/repository"
	"kubeterra/pkg/respond"
	"kubeterra/pkg/scope"
)

type ParkCtrl struct {
	repo repo.ParkRepository
	acts *activity.Recorder
	log  zerolog.Logger
}

func New(repo repo.ParkRepository, acts *activity.Recorder, log zerolog.Logger) *ParkCtrl {
	return &ParkCtrl{repo: repo, acts: acts, log: log}
}

type createParkReq struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AreaKm2   float64 `json:"areaKm2" validate:"gte=0"`
	Status    string  `json:"status"`
}

func (h *ParkCtrl) Create(c echo.Context) error {
	r := scope.FromContext(c)
	var req createParkReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "name is required")
	}
	if req.Status == "" {
		req.Status = entities.StatusActive
	}
	p := &entities.Park{
		ManagerID: r.ID,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		AreaKm2:   req.AreaKm2,
		Status:    req.Status,
	}
	if err := h.repo.Create(p); err != nil {
		h.log.Error().Err(err).Msg("create park")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "PARK_CREATED", "create", entities.ModulePark, &p.ID)
	return respond.Created(c, p)
}

func (h *ParkCtrl) List(c echo.Context) error {
	out, err := h.repo.List(scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list parks")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

func (h *ParkCtrl) Get(c echo.Context) error {
	p, err := h.repo.FindByID(c.Param("id"), scope.FromContext(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "park not found")
		}
		h.log.Error().Err(err).Msg("get park")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, p)
}

// findParentPark resolves :parkId under the requester's scope and maps errors.
func (h *ParkCtrl) findParentPark(c echo.Context, r scope.Requester) (*entities.Park, error) {
	p, err := h.repo.FindByID(c.Param("parkId"), r)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, respond.Fail(c, 404, "park not found")
		}
		h.log.Error().Err(err).Msg("find park")
		return nil, respond.Fail(c, 500, "internal error")
	}
	return p, nil
}

type createPopulationReq struct {
	Species            string `json:"species" validate:"required"`
	EstimatedCount     int    `json:"estimatedCount" validate:"gte=0"`
	LastCensusCount    int    `json:"lastCensusCount" validate:"gte=0"`
	Trend              string `json:"trend"`
	ConservationStatus string `json:"conservationStatus"`
}

func (h *ParkCtrl) CreatePopulation(c echo.Context) error {
	r := scope.FromContext(c)
	p, err := h.findParentPark(c, r)
	if p == nil {
		return err
	}
	var req createPopulationReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "species is required")
	}
	w := &entities.WildlifePopulation{
		ParkID:             p.ID,
		Species:            req.Species,
		EstimatedCount:     req.EstimatedCount,
		LastCensusCount:    req.LastCensusCount,
		Trend:              req.Trend,
		ConservationStatus: req.ConservationStatus,
	}
	if err := h.repo.CreatePopulation(w); err != nil {
		h.log.Error().Err(err).Msg("create population")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "WILDLIFE_CREATED", "create", entities.ModulePark, &w.ID)
	return respond.Created(c, w)
}

func (h *ParkCtrl) ListPopulations(c echo.Context) error {
	out, err := h.repo.ListPopulations(c.Param("parkId"), scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list populations")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

type createPatrolReq struct {
	Name           string      `json:"name" validate:"required"`
	Route          [][]float64 `json:"route"`
	ScheduledStart time.Time   `json:"scheduledStart"`
	ScheduledEnd   time.Time   `json:"scheduledEnd"`
	Rangers        []string    `json:"rangers"`
}

func (h *ParkCtrl) CreatePatrol(c echo.Context) error {
	r := scope.FromContext(c)
	p, err := h.findParentPark(c, r)
	if p == nil {
		return err
	}
	var req createPatrolReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "name is required")
	}
	pt := &entities.Patrol{
		ParkID:         p.ID,
		Name:           req.Name,
		Route:          req.Route,
		ScheduledStart: req.ScheduledStart,
		ScheduledEnd:   req.ScheduledEnd,
		Status:         entities.PatrolScheduled,
		Rangers:        req.Rangers,
	}
	if err := h.repo.CreatePatrol(pt); err != nil {
		h.log.Error().Err(err).Msg("create patrol")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "PATROL_CREATED", "create", entities.ModulePark, &pt.ID)
	return respond.Created(c, pt)
}

func (h *ParkCtrl) ListPatrols(c echo.Context) error {
	out, err := h.repo.ListPatrols(c.Param("parkId"), scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list patrols")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

type createIncidentReq struct {
	Type        string    `json:"type" validate:"required"`
	Severity    string    `json:"severity" validate:"required"`
	PatrolID    *string   `json:"patrolId"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	ReportedAt  time.Time `json:"reportedAt"`
}

func (h *ParkCtrl) CreateIncident(c echo.Context) error {
	r := scope.FromContext(c)
	p, err := h.findParentPark(c, r)
	if p == nil {
		return err
	}
	var req createIncidentReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "type and severity are required")
	}
	if req.ReportedAt.IsZero() {
		req.ReportedAt = time.Now()
	}
	in := &entities.Incident{
		ParkID:      p.ID,
		PatrolID:    req.PatrolID,
		Type:        req.Type,
		Severity:    req.Severity,
		Status:      entities.IncidentOpen,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
		ReportedAt:  req.ReportedAt,
	}
	if err := h.repo.CreateIncident(in); err != nil {
		h.log.Error().Err(err).Msg("create incident")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "INCIDENT_REPORTED", "create", entities.ModulePark, &in.ID)
	return respond.Created(c, in)
}

func (h *ParkCtrl) ListIncidents(c echo.Context) error {
	out, err := h.repo.ListIncidents(c.Param("parkId"), scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list incidents")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}
