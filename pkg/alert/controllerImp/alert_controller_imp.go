package controllerImp

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/activity"
	repo "kubeterra/pkg/alert/repository"
	"kubeterra/pkg/respond"
	"kubeterra/pkg/scope"
	"kubeterra/pkg/ws"
)

var validStatuses = map[string]bool{
	entities.AlertNew:          true,
	entities.AlertAcknowledged: true,
	entities.AlertInProgress:   true,
	entities.AlertResolved:     true,
}

type AlertCtrl struct {
	repo repo.AlertRepository
	acts *activity.Recorder
	hub  *ws.Hub
	log  zerolog.Logger
}

func New(repo repo.AlertRepository, acts *activity.Recorder, hub *ws.Hub, log zerolog.Logger) *AlertCtrl {
	return &AlertCtrl{repo: repo, acts: acts, hub: hub, log: log}
}

type createAlertReq struct {
	Type     string  `json:"type" validate:"required"`
	Severity string  `json:"severity" validate:"required"`
	Module   string  `json:"module" validate:"required,oneof=farm park land"`
	Title    string  `json:"title" validate:"required"`
	Message  string  `json:"message"`
	EntityID *string `json:"entityId"`
	FarmID   *string `json:"farmId"`
}

func (h *AlertCtrl) Create(c echo.Context) error {
	r := scope.FromContext(c)
	var req createAlertReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "type, severity, title and a valid module are required")
	}
	a := &entities.Alert{
		Type:     req.Type,
		Severity: req.Severity,
		Status:   entities.AlertNew,
		Module:   req.Module,
		Title:    req.Title,
		Message:  req.Message,
		EntityID: req.EntityID,
		FarmID:   req.FarmID,
	}
	if err := h.repo.Create(a); err != nil {
		h.log.Error().Err(err).Msg("create alert")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "ALERT_CREATED", "create", a.Module, &a.ID)
	h.hub.Broadcast(ws.Event{Type: "alert.created", Data: a})
	return respond.Created(c, a)
}

func (h *AlertCtrl) List(c echo.Context) error {
	f := repo.ListFilter{
		Status:   c.QueryParam("status"),
		Severity: c.QueryParam("severity"),
		Module:   c.QueryParam("module"),
	}
	out, err := h.repo.List(f, scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list alerts")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

func (h *AlertCtrl) Get(c echo.Context) error {
	a, err := h.repo.FindByID(c.Param("id"), scope.FromContext(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "alert not found")
		}
		h.log.Error().Err(err).Msg("get alert")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, a)
}

// UpdateStatus sets the alert status. Any of the four statuses is accepted in
// any order; only RESOLVED stamps the resolver and resolution time.
func (h *AlertCtrl) UpdateStatus(c echo.Context) error {
	r := scope.FromContext(c)
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if !validStatuses[body.Status] {
		return respond.Fail(c, 400, "status must be one of NEW, ACKNOWLEDGED, IN_PROGRESS, RESOLVED")
	}
	a, err := h.repo.FindByID(c.Param("id"), r)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "alert not found")
		}
		h.log.Error().Err(err).Msg("find alert for status update")
		return respond.Fail(c, 500, "internal error")
	}
	a.Status = body.Status
	if body.Status == entities.AlertResolved {
		now := time.Now()
		a.ResolvedByID = &r.ID
		a.ResolvedAt = &now
	}
	if err := h.repo.Save(a); err != nil {
		h.log.Error().Err(err).Msg("update alert status")
		return respond.Fail(c, 500, "internal error")
	}
	action := "update"
	if body.Status == entities.AlertResolved {
		action = "resolve"
	}
	h.acts.Record(r.ID, "ALERT_STATUS_CHANGED", action, a.Module, &a.ID)
	h.hub.Broadcast(ws.Event{Type: "alert.status", Data: a})
	return respond.OK(c, a)
}

// Assign sets the assignee and always forces the status to ACKNOWLEDGED,
// whatever the current status is.
func (h *AlertCtrl) Assign(c echo.Context) error {
	r := scope.FromContext(c)
	var body struct {
		AssignedToID string `json:"assignedToId"`
	}
	if err := c.Bind(&body); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if body.AssignedToID == "" {
		return respond.Fail(c, 400, "assignedToId is required")
	}
	a, err := h.repo.FindByID(c.Param("id"), r)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "alert not found")
		}
		h.log.Error().Err(err).Msg("find alert for assign")
		return respond.Fail(c, 500, "internal error")
	}
	a.AssignedToID = &body.AssignedToID
	a.Status = entities.AlertAcknowledged
	if err := h.repo.Save(a); err != nil {
		h.log.Error().Err(err).Msg("assign alert")
		return respond.Fail(c, 500, "internal error")
	}
	h.acts.Record(r.ID, "ALERT_ASSIGNED", "assign", a.Module, &a.ID)
	h.hub.Broadcast(ws.Event{Type: "alert.assigned", Data: a})
	return respond.OK(c, a)
}

func (h *AlertCtrl) Stats(c echo.Context) error {
	s, err := h.repo.Stats(scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("alert stats")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, s)
}
