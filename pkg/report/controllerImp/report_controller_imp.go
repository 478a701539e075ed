package controllerImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/activity"
	repo "kubeterra/pkg/report/repository"
	"kubeterra/pkg/respond"
	"kubeterra/pkg/scope"
)

type ReportCtrl struct {
	repo repo.ReportRepository
	acts *activity.Recorder
	log  zerolog.Logger
}

func New(repo repo.ReportRepository, acts *activity.Recorder, log zerolog.Logger) *ReportCtrl {
	return &ReportCtrl{repo: repo, acts: acts, log: log}
}

type createReportReq struct {
	Title        string          `json:"title" validate:"required"`
	Type         string          `json:"type" validate:"required"`
	Module       string          `json:"module" validate:"required,oneof=farm park land"`
	PeriodStart  *time.Time      `json:"periodStart"`
	PeriodEnd    *time.Time      `json:"periodEnd"`
	DataSnapshot json.RawMessage `json:"dataSnapshot" validate:"required"`
	ChartPayload json.RawMessage `json:"chartPayload"`
}

// Create stores the caller's snapshot verbatim. The server never inspects or
// recomputes the snapshot contents.
func (h *ReportCtrl) Create(c echo.Context) error {
	r := scope.FromContext(c)
	var req createReportReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "title, type, a valid module and dataSnapshot are required")
	}
	rep := &entities.Report{
		Title:         req.Title,
		Type:          req.Type,
		Module:        req.Module,
		PeriodStart:   req.PeriodStart,
		PeriodEnd:     req.PeriodEnd,
		DataSnapshot:  req.DataSnapshot,
		ChartPayload:  req.ChartPayload,
		GeneratedByID: r.ID,
	}
	if err := h.repo.Create(rep); err != nil {
		h.log.Error().Err(err).Msg("create report")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "REPORT_GENERATED", "create", rep.Module, &rep.ID)
	return respond.Created(c, rep)
}

func (h *ReportCtrl) List(c echo.Context) error {
	out, err := h.repo.List(scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list reports")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

func (h *ReportCtrl) Get(c echo.Context) error {
	rep, err := h.repo.FindByID(c.Param("id"), scope.FromContext(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "report not found")
		}
		h.log.Error().Err(err).Msg("get report")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, rep)
}

// Export renders the report as an xlsx download: a metadata block followed by
// the top-level keys of the stored snapshot.
func (h *ReportCtrl) Export(c echo.Context) error {
	rep, err := h.repo.FindByID(c.Param("id"), scope.FromContext(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "report not found")
		}
		h.log.Error().Err(err).Msg("get report for export")
		return respond.Fail(c, 500, "internal error")
	}
	buf, err := renderXLSX(rep)
	if err != nil {
		h.log.Error().Err(err).Msg("export report")
		return respond.Fail(c, 500, "internal error")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, rep.ID))
	return c.Blob(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf)
}
