package controllerImp

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/activity"
	repo "kubeterra/pkg/land/repository"
	"kubeterra/pkg/respond"
	"kubeterra/pkg/scope"
)

type LandCtrl struct {
	repo repo.LandRepository
	acts *activity.Recorder
	log  zerolog.Logger
}

func New(repo repo.LandRepository, acts *activity.Recorder, log zerolog.Logger) *LandCtrl {
	return &LandCtrl{repo: repo, acts: acts, log: log}
}

type createZoneReq struct {
	Name             string  `json:"name" validate:"required"`
	Region           string  `json:"region" validate:"required"`
	District         string  `json:"district"`
	LandUseType      string  `json:"landUseType"`
	AreaKm2          float64 `json:"areaKm2" validate:"gte=0"`
	VegetationIndex  float64 `json:"vegetationIndex"`
	SoilQuality      float64 `json:"soilQuality"`
	DegradationLevel float64 `json:"degradationLevel" validate:"gte=0,lte=100"`
}

func (h *LandCtrl) CreateZone(c echo.Context) error {
	r := scope.FromContext(c)
	var req createZoneReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "name and region are required, degradationLevel must be 0-100")
	}
	z := &entities.LandZone{
		Name:             req.Name,
		Region:           req.Region,
		District:         req.District,
		LandUseType:      req.LandUseType,
		AreaKm2:          req.AreaKm2,
		VegetationIndex:  req.VegetationIndex,
		SoilQuality:      req.SoilQuality,
		DegradationLevel: req.DegradationLevel,
	}
	if err := h.repo.CreateZone(z); err != nil {
		h.log.Error().Err(err).Msg("create land zone")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "LAND_ZONE_CREATED", "create", entities.ModuleLand, &z.ID)
	return respond.Created(c, z)
}

func (h *LandCtrl) ListZones(c echo.Context) error {
	out, err := h.repo.ListZones()
	if err != nil {
		h.log.Error().Err(err).Msg("list land zones")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

func (h *LandCtrl) GetZone(c echo.Context) error {
	z, err := h.repo.FindZoneByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "land zone not found")
		}
		h.log.Error().Err(err).Msg("get land zone")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, z)
}

// findZone resolves :zoneId and maps errors.
func (h *LandCtrl) findZone(c echo.Context) (*entities.LandZone, error) {
	z, err := h.repo.FindZoneByID(c.Param("zoneId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, respond.Fail(c, 404, "land zone not found")
		}
		h.log.Error().Err(err).Msg("find land zone")
		return nil, respond.Fail(c, 500, "internal error")
	}
	return z, nil
}

type createSurveyReq struct {
	NDVI        float64   `json:"ndvi"`
	Biomass     float64   `json:"biomass"`
	CanopyCover float64   `json:"canopyCover"`
	HealthScore float64   `json:"healthScore" validate:"gte=0,lte=100"`
	SurveyDate  time.Time `json:"surveyDate"`
}

func (h *LandCtrl) CreateSurvey(c echo.Context) error {
	r := scope.FromContext(c)
	z, err := h.findZone(c)
	if z == nil {
		return err
	}
	var req createSurveyReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "healthScore must be 0-100")
	}
	if req.SurveyDate.IsZero() {
		req.SurveyDate = time.Now()
	}
	s := &entities.LandSurvey{
		ZoneID:      z.ID,
		NDVI:        req.NDVI,
		Biomass:     req.Biomass,
		CanopyCover: req.CanopyCover,
		HealthScore: req.HealthScore,
		SurveyDate:  req.SurveyDate,
	}
	if err := h.repo.CreateSurvey(s); err != nil {
		h.log.Error().Err(err).Msg("create land survey")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "LAND_SURVEY_CREATED", "create", entities.ModuleLand, &s.ID)
	return respond.Created(c, s)
}

func (h *LandCtrl) ListSurveys(c echo.Context) error {
	out, err := h.repo.ListSurveys(c.Param("zoneId"))
	if err != nil {
		h.log.Error().Err(err).Msg("list land surveys")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

type createChangeReq struct {
	ChangeType      string    `json:"changeType" validate:"required"`
	Severity        string    `json:"severity" validate:"required"`
	AffectedAreaKm2 float64   `json:"affectedAreaKm2" validate:"gte=0"`
	DetectedAt      time.Time `json:"detectedAt"`
}

func (h *LandCtrl) CreateChange(c echo.Context) error {
	r := scope.FromContext(c)
	z, err := h.findZone(c)
	if z == nil {
		return err
	}
	var req createChangeReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "changeType and severity are required")
	}
	if req.DetectedAt.IsZero() {
		req.DetectedAt = time.Now()
	}
	ch := &entities.LandChange{
		ZoneID:          z.ID,
		ChangeType:      req.ChangeType,
		Severity:        req.Severity,
		AffectedAreaKm2: req.AffectedAreaKm2,
		DetectedAt:      req.DetectedAt,
	}
	if err := h.repo.CreateChange(ch); err != nil {
		h.log.Error().Err(err).Msg("create land change")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "LAND_CHANGE_DETECTED", "create", entities.ModuleLand, &ch.ID)
	return respond.Created(c, ch)
}

func (h *LandCtrl) ListChanges(c echo.Context) error {
	out, err := h.repo.ListChanges(c.Param("zoneId"))
	if err != nil {
		h.log.Error().Err(err).Msg("list land changes")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}
