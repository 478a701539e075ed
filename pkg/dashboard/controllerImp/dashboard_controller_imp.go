package controllerImp

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	svc "kubeterra/pkg/dashboard/service"
	"kubeterra/pkg/respond"
	"kubeterra/pkg/scope"
)

type DashboardCtrl struct {
	svc svc.DashboardService
	log zerolog.Logger
}

func New(s svc.DashboardService, log zerolog.Logger) *DashboardCtrl {
	return &DashboardCtrl{svc: s, log: log}
}

// Every aggregation is all-or-nothing: a failed constituent query surfaces as
// a single 500.

func (h *DashboardCtrl) Farm(c echo.Context) error {
	out, err := h.svc.Farm(c.Request().Context(), scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("farm dashboard")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

func (h *DashboardCtrl) Park(c echo.Context) error {
	out, err := h.svc.Park(c.Request().Context(), scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("park dashboard")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

func (h *DashboardCtrl) Land(c echo.Context) error {
	out, err := h.svc.Land(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("land dashboard")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}

func (h *DashboardCtrl) Overview(c echo.Context) error {
	out, err := h.svc.Overview(c.Request().Context(), scope.FromContext(c))
	if err != nil {
		h.log.Error().Err(err).Msg("dashboard overview")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, out)
}
