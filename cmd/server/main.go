package main

import (
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"kubeterra/config"
	"kubeterra/database"
	"kubeterra/router"

	"kubeterra/pkg/activity"
	"kubeterra/pkg/middleware"
	"kubeterra/pkg/token"
	"kubeterra/pkg/validate"
	"kubeterra/pkg/ws"

	// Auth
	authCtrlImp "kubeterra/pkg/auth/controllerImp"
	authSvcImp "kubeterra/pkg/auth/serviceImp"

	// Farm
	farmCtrlImp "kubeterra/pkg/farm/controllerImp"
	farmRepoImp "kubeterra/pkg/farm/repositoryImp"

	// Park
	parkCtrlImp "kubeterra/pkg/park/controllerImp"
	parkRepoImp "kubeterra/pkg/park/repositoryImp"

	// Land
	landCtrlImp "kubeterra/pkg/land/controllerImp"
	landRepoImp "kubeterra/pkg/land/repositoryImp"

	// Alerts
	alertCtrlImp "kubeterra/pkg/alert/controllerImp"
	alertRepoImp "kubeterra/pkg/alert/repositoryImp"

	// Reports
	reportCtrlImp "kubeterra/pkg/report/controllerImp"
	reportRepoImp "kubeterra/pkg/report/repositoryImp"

	// Dashboard
	dashCtrlImp "kubeterra/pkg/dashboard/controllerImp"
	dashSvcImp "kubeterra/pkg/dashboard/serviceImp"

	// Health
	healthCtrlImp "kubeterra/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	// 3) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = validate.New()
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(log))

	// 5) Shared plumbing
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	acts := activity.NewRecorder(db, log)
	hub := ws.NewHub(log)
	go hub.Run()

	// 6) Repos/Services/Controllers
	authSvc := authSvcImp.New(db, tokens)
	dashSvc := dashSvcImp.New(db)

	ctrl := router.Controllers{
		Auth:      authCtrlImp.New(authSvc, log),
		Farm:      farmCtrlImp.New(farmRepoImp.New(db), acts, log),
		Park:      parkCtrlImp.New(parkRepoImp.New(db), acts, log),
		Land:      landCtrlImp.New(landRepoImp.New(db), acts, log),
		Alert:     alertCtrlImp.New(alertRepoImp.New(db), acts, hub, log),
		Report:    reportCtrlImp.New(reportRepoImp.New(db), acts, log),
		Dashboard: dashCtrlImp.New(dashSvc, log),
		Health:    healthCtrlImp.NewHealthCtrl(db),
		Hub:       hub,
	}

	// 7) Router + start
	r := router.New(e, tokens, ctrl)
	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
