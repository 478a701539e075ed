package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kubeterra/database"
	"kubeterra/entities"
	"kubeterra/pkg/activity"
	farmRepoImp "kubeterra/pkg/farm/repositoryImp"
	"kubeterra/pkg/validate"
)

func newCtrl(t *testing.T) (*FarmCtrl, *gorm.DB, *echo.Echo) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "farm_test.db"))
	log := zerolog.Nop()
	h := New(farmRepoImp.New(db), activity.NewRecorder(db, log), log)
	e := echo.New()
	e.Validator = validate.New()
	return h, db, e
}

func doJSON(e *echo.Echo, method, body, uid, role string) (echo.Context, *httptest.ResponseRecorder) {
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

func listedFarms(t *testing.T, rec *httptest.ResponseRecorder) []entities.Farm {
	t.Helper()
	var body struct {
		Data []entities.Farm `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data
}

func TestFarmVisibilityAcrossUsers(t *testing.T) {
	h, _, e := newCtrl(t)

	// farmer A creates a farm
	c, rec := doJSON(e, http.MethodPost, `{"name":"North Paddock","areaHectares":42}`, "farmer-a", entities.RoleFarmer)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// farmer B must not see it
	c, rec = doJSON(e, http.MethodGet, "", "farmer-b", entities.RoleFarmer)
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, listedFarms(t, rec))

	// farmer A sees their own
	c, rec = doJSON(e, http.MethodGet, "", "farmer-a", entities.RoleFarmer)
	require.NoError(t, h.List(c))
	require.Len(t, listedFarms(t, rec), 1)

	// admin sees everything
	c, rec = doJSON(e, http.MethodGet, "", "admin-1", entities.RoleAdmin)
	require.NoError(t, h.List(c))
	require.Len(t, listedFarms(t, rec), 1)
}

func TestGetFarmScopedToOwner(t *testing.T) {
	h, db, e := newCtrl(t)

	f := entities.Farm{OwnerID: "farmer-a", Name: "Hidden", Status: entities.StatusActive}
	require.NoError(t, db.Create(&f).Error)

	c, rec := doJSON(e, http.MethodGet, "", "farmer-b", entities.RoleFarmer)
	c.SetParamNames("id")
	c.SetParamValues(f.ID)
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = doJSON(e, http.MethodGet, "", "farmer-a", entities.RoleFarmer)
	c.SetParamNames("id")
	c.SetParamValues(f.ID)
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateFarmRequiresName(t *testing.T) {
	h, _, e := newCtrl(t)

	c, rec := doJSON(e, http.MethodPost, `{"areaHectares":10}`, "farmer-a", entities.RoleFarmer)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateHerdUnderForeignFarmIs404(t *testing.T) {
	h, db, e := newCtrl(t)

	f := entities.Farm{OwnerID: "farmer-a", Name: "A Farm", Status: entities.StatusActive}
	require.NoError(t, db.Create(&f).Error)

	c, rec := doJSON(e, http.MethodPost, `{"name":"Sneaky Herd"}`, "farmer-b", entities.RoleFarmer)
	c.SetParamNames("farmId")
	c.SetParamValues(f.ID)
	require.NoError(t, h.CreateHerd(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = doJSON(e, http.MethodPost, `{"name":"Own Herd","totalCount":20,"healthyCount":18,"sickCount":2}`, "farmer-a", entities.RoleFarmer)
	c.SetParamNames("farmId")
	c.SetParamValues(f.ID)
	require.NoError(t, h.CreateHerd(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateRecordsActivity(t *testing.T) {
	h, db, e := newCtrl(t)

	c, _ := doJSON(e, http.MethodPost, `{"name":"Logged Farm"}`, "farmer-a", entities.RoleFarmer)
	require.NoError(t, h.Create(c))

	var acts []entities.Activity
	require.NoError(t, db.Find(&acts).Error)
	require.Len(t, acts, 1)
	assert.Equal(t, "FARM_CREATED", acts[0].Type)
	assert.Equal(t, entities.ModuleFarm, acts[0].Module)
	assert.Equal(t, "farmer-a", acts[0].UserID)
}
