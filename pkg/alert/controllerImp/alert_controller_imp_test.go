package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kubeterra/database"
	"kubeterra/entities"
	"kubeterra/pkg/activity"
	alertRepoImp "kubeterra/pkg/alert/repositoryImp"
	"kubeterra/pkg/validate"
	"kubeterra/pkg/ws"
)

func newCtrl(t *testing.T) (*AlertCtrl, *gorm.DB, *echo.Echo) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "alert_test.db"))
	log := zerolog.Nop()
	hub := ws.NewHub(log)
	go hub.Run()
	h := New(alertRepoImp.New(db), activity.NewRecorder(db, log), hub, log)
	e := echo.New()
	e.Validator = validate.New()
	return h, db, e
}

func ctxWith(e *echo.Echo, method, body, uid, role string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", uid)
	c.Set("role", role)
	return c, rec
}

func seedAlert(t *testing.T, db *gorm.DB, status string) *entities.Alert {
	t.Helper()
	a := &entities.Alert{
		Type: "HEALTH", Severity: entities.SeverityHigh, Status: status,
		Module: entities.ModuleFarm, Title: "sick animals trending up",
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func TestAssignAlwaysForcesAcknowledged(t *testing.T) {
	h, db, e := newCtrl(t)

	for _, initial := range []string{
		entities.AlertNew, entities.AlertInProgress, entities.AlertResolved,
	} {
		a := seedAlert(t, db, initial)
		c, rec := ctxWith(e, http.MethodPut, `{"assignedToId":"ranger-7"}`, "admin-1", entities.RoleAdmin)
		c.SetParamNames("id")
		c.SetParamValues(a.ID)

		require.NoError(t, h.Assign(c))
		require.Equal(t, http.StatusOK, rec.Code, "initial status %s", initial)

		var got entities.Alert
		require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
		assert.Equal(t, entities.AlertAcknowledged, got.Status)
		require.NotNil(t, got.AssignedToID)
		assert.Equal(t, "ranger-7", *got.AssignedToID)
	}
}

func TestAssignRequiresAssignee(t *testing.T) {
	h, db, e := newCtrl(t)
	a := seedAlert(t, db, entities.AlertNew)

	c, rec := ctxWith(e, http.MethodPut, `{}`, "admin-1", entities.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(a.ID)
	require.NoError(t, h.Assign(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveStampsResolverAndTime(t *testing.T) {
	h, db, e := newCtrl(t)
	a := seedAlert(t, db, entities.AlertInProgress)

	c, rec := ctxWith(e, http.MethodPut, `{"status":"RESOLVED"}`, "admin-1", entities.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(a.ID)
	require.NoError(t, h.UpdateStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.Alert
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	assert.Equal(t, entities.AlertResolved, got.Status)
	require.NotNil(t, got.ResolvedByID)
	assert.Equal(t, "admin-1", *got.ResolvedByID)
	require.NotNil(t, got.ResolvedAt)
	assert.WithinDuration(t, time.Now(), *got.ResolvedAt, time.Minute)
}

func TestNonResolveTransitionsStampNothing(t *testing.T) {
	h, db, e := newCtrl(t)
	a := seedAlert(t, db, entities.AlertNew)

	c, rec := ctxWith(e, http.MethodPut, `{"status":"IN_PROGRESS"}`, "admin-1", entities.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(a.ID)
	require.NoError(t, h.UpdateStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.Alert
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	assert.Equal(t, entities.AlertInProgress, got.Status)
	assert.Nil(t, got.ResolvedByID)
	assert.Nil(t, got.ResolvedAt)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	h, db, e := newCtrl(t)
	a := seedAlert(t, db, entities.AlertNew)

	c, rec := ctxWith(e, http.MethodPut, `{"status":"SHELVED"}`, "admin-1", entities.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(a.ID)
	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsCountsUnresolved(t *testing.T) {
	h, db, e := newCtrl(t)
	seedAlert(t, db, entities.AlertNew)
	seedAlert(t, db, entities.AlertInProgress)
	seedAlert(t, db, entities.AlertResolved)

	c, rec := ctxWith(e, http.MethodGet, "", "admin-1", entities.RoleAdmin)
	require.NoError(t, h.Stats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Total      int64 `json:"total"`
			Unresolved int64 `json:"unresolved"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.Data.Total)
	assert.Equal(t, int64(2), body.Data.Unresolved)
}
