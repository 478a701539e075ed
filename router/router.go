package router

import (
	"github.com/labstack/echo/v4"

	alertCtrl "kubeterra/pkg/alert/controllerImp"
	authCtrl "kubeterra/pkg/auth/controllerImp"
	dashCtrl "kubeterra/pkg/dashboard/controllerImp"
	farmCtrl "kubeterra/pkg/farm/controllerImp"
	healthCtrl "kubeterra/pkg/health/controllerImp"
	landCtrl "kubeterra/pkg/land/controllerImp"
	"kubeterra/pkg/middleware"
	parkCtrl "kubeterra/pkg/park/controllerImp"
	reportCtrl "kubeterra/pkg/report/controllerImp"
	"kubeterra/pkg/token"
	"kubeterra/pkg/ws"
)

type Controllers struct {
	Auth      *authCtrl.AuthCtrl
	Farm      *farmCtrl.FarmCtrl
	Park      *parkCtrl.ParkCtrl
	Land      *landCtrl.LandCtrl
	Alert     *alertCtrl.AlertCtrl
	Report    *reportCtrl.ReportCtrl
	Dashboard *dashCtrl.DashboardCtrl
	Health    *healthCtrl.HealthCtrl
	Hub       *ws.Hub
}

func New(e *echo.Echo, tokens *token.Manager, ctrl Controllers) *echo.Echo {
	e.GET("/health", ctrl.Health.Health)

	api := e.Group("/api")

	// public auth endpoints
	api.POST("/auth/register", ctrl.Auth.Register)
	api.POST("/auth/login", ctrl.Auth.Login)

	auth := api.Group("", middleware.BearerAuth(tokens))

	auth.GET("/auth/profile", ctrl.Auth.Profile)
	auth.PUT("/auth/profile", ctrl.Auth.UpdateProfile)
	auth.POST("/auth/change-password", ctrl.Auth.ChangePassword)
	auth.POST("/auth/refresh", ctrl.Auth.Refresh)

	auth.GET("/farms", ctrl.Farm.List)
	auth.POST("/farms", ctrl.Farm.Create)
	auth.GET("/farms/:id", ctrl.Farm.Get)
	auth.GET("/farms/:farmId/herds", ctrl.Farm.ListHerds)
	auth.POST("/farms/:farmId/herds", ctrl.Farm.CreateHerd)
	auth.GET("/farms/:farmId/zones", ctrl.Farm.ListZones)
	auth.POST("/farms/:farmId/zones", ctrl.Farm.CreateZone)

	auth.GET("/parks", ctrl.Park.List)
	auth.POST("/parks", ctrl.Park.Create)
	auth.GET("/parks/:id", ctrl.Park.Get)
	auth.GET("/parks/:parkId/wildlife", ctrl.Park.ListPopulations)
	auth.POST("/parks/:parkId/wildlife", ctrl.Park.CreatePopulation)
	auth.GET("/parks/:parkId/patrols", ctrl.Park.ListPatrols)
	auth.POST("/parks/:parkId/patrols", ctrl.Park.CreatePatrol)
	auth.GET("/parks/:parkId/incidents", ctrl.Park.ListIncidents)
	auth.POST("/parks/:parkId/incidents", ctrl.Park.CreateIncident)

	auth.GET("/land/zones", ctrl.Land.ListZones)
	auth.POST("/land/zones", ctrl.Land.CreateZone)
	auth.GET("/land/zones/:id", ctrl.Land.GetZone)
	auth.GET("/land/zones/:zoneId/surveys", ctrl.Land.ListSurveys)
	auth.POST("/land/zones/:zoneId/surveys", ctrl.Land.CreateSurvey)
	auth.GET("/land/zones/:zoneId/changes", ctrl.Land.ListChanges)
	auth.POST("/land/zones/:zoneId/changes", ctrl.Land.CreateChange)

	auth.GET("/alerts", ctrl.Alert.List)
	auth.POST("/alerts", ctrl.Alert.Create)
	// register before /alerts/:id so "stats" is not captured as an id
	auth.GET("/alerts/stats", ctrl.Alert.Stats)
	auth.GET("/alerts/:id", ctrl.Alert.Get)
	auth.PUT("/alerts/:id/status", ctrl.Alert.UpdateStatus)
	auth.PUT("/alerts/:id/assign", ctrl.Alert.Assign)

	auth.GET("/reports", ctrl.Report.List)
	auth.POST("/reports", ctrl.Report.Create)
	auth.GET("/reports/:id", ctrl.Report.Get)
	auth.GET("/reports/:id/export", ctrl.Report.Export)

	auth.GET("/dashboard/overview", ctrl.Dashboard.Overview)
	auth.GET("/dashboard/farm", ctrl.Dashboard.Farm)
	auth.GET("/dashboard/park", ctrl.Dashboard.Park)
	auth.GET("/dashboard/land", ctrl.Dashboard.Land)

	auth.GET("/ws", ctrl.Hub.Serve)

	return e
}
