package controllerImp

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/activity"
	repo "kubeterra/pkg/farm/repository"
	"kubeterra/pkg/respond"
	"kubeterra/pkg/scope"
)

type FarmCtrl struct {
	repo repo.FarmRepository
	acts *activity.Recorder
	log  zerolog.Logger
}

func New(repo repo.FarmRepository, acts *activity.Recorder, log zerolog.Logger) *FarmCtrl {
	return &FarmCtrl{repo: repo, acts: acts, log: log}
}

type createFarmReq struct {
	Name         string  `json:"name" validate:"required"`
	Location     string  `json:"location"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	AreaHectares float64 `json:"areaHectares" validate:"gte=0"`
	Status       string  `json:"status"`
}

func (h *FarmCtrl) Create(c echo.Context) error {
	r := scope.FromContext(c)
	var req createFarmReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "name is required")
	}
	if req.Status == "" {
		req.Status = entities.StatusActive
	}
	f := &entities.Farm{
		OwnerID:      r.ID,
		Name:         req.Name,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		AreaHectares: req.AreaHectares,
		Status:       req.Status,
	}
	if err := h.repo.Create(f); err != nil {
		h.log.Error().Err(err).Msg("create farm")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "FARM_CREATED", "create", entities.ModuleFarm, &f.ID)
	return respond.Created(c, f)
}

func (h *FarmCtrl) List(c echo.Context) error {
	out, err := h.repo.List(scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list farms")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	f, err := h.repo.FindByID(c.Param("id"), scope.FromContext(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "farm not found")
		}
		h.log.Error().Err(err).Msg("get farm")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, f)
}

type createHerdReq struct {
	Name         string  `json:"name" validate:"required"`
	Species      string  `json:"species"`
	TotalCount   int     `json:"totalCount" validate:"gte=0"`
	HealthyCount int     `json:"healthyCount" validate:"gte=0"`
	SickCount    int     `json:"sickCount" validate:"gte=0"`
	MissingCount int     `json:"missingCount" validate:"gte=0"`
	RiskScore    float64 `json:"riskScore"`
}

func (h *FarmCtrl) CreateHerd(c echo.Context) error {
	r := scope.FromContext(c)
	// parent must be visible to the requester; scoping doubles as the
	// ownership check
	f, err := h.repo.FindByID(c.Param("farmId"), r)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "farm not found")
		}
		h.log.Error().Err(err).Msg("find farm for herd")
		return respond.Fail(c, 500, "internal error")
	}
	var req createHerdReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "name is required and counts must be non-negative")
	}
	hd := &entities.Herd{
		FarmID:       f.ID,
		Name:         req.Name,
		Species:      req.Species,
		TotalCount:   req.TotalCount,
		HealthyCount: req.HealthyCount,
		SickCount:    req.SickCount,
		MissingCount: req.MissingCount,
		RiskScore:    req.RiskScore,
	}
	if err := h.repo.CreateHerd(hd); err != nil {
		h.log.Error().Err(err).Msg("create herd")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "HERD_CREATED", "create", entities.ModuleFarm, &hd.ID)
	return respond.Created(c, hd)
}

func (h *FarmCtrl) ListHerds(c echo.Context) error {
	out, err := h.repo.ListHerds(c.Param("farmId"), scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list herds")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

type createZoneReq struct {
	Name             string      `json:"name" validate:"required"`
	Boundary         [][]float64 `json:"boundary"`
	VegetationIndex  float64     `json:"vegetationIndex"`
	SoilMoisture     float64     `json:"soilMoisture"`
	CarryingCapacity int         `json:"carryingCapacity" validate:"gte=0"`
}

func (h *FarmCtrl) CreateZone(c echo.Context) error {
	r := scope.FromContext(c)
	f, err := h.repo.FindByID(c.Param("farmId"), r)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "farm not found")
		}
		h.log.Error().Err(err).Msg("find farm for zone")
		return respond.Fail(c, 500, "internal error")
	}
	var req createZoneReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "name is required")
	}
	z := &entities.PastureZone{
		FarmID:           f.ID,
		Name:             req.Name,
		Boundary:         req.Boundary,
		VegetationIndex:  req.VegetationIndex,
		SoilMoisture:     req.SoilMoisture,
		CarryingCapacity: req.CarryingCapacity,
	}
	if err := h.repo.CreateZone(z); err != nil {
		h.log.Error().Err(err).Msg("create pasture zone")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "ZONE_CREATED", "create", entities.ModuleFarm, &z.ID)
	return respond.Created(c, z)
}

func (h *FarmCtrl) ListZones(c echo.Context) error {
	out, err := h.repo.ListZones(c.Param("farmId"), scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list pasture zones")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}
