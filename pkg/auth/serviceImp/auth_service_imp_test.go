package serviceImp

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kubeterra/database"
	"kubeterra/entities"
	"kubeterra/pkg/auth/service"
	"kubeterra/pkg/token"
)

func newService(t *testing.T) (service.AuthService, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "auth_test.db"))
	tokens := token.NewManager("test-secret-at-least-32-characters!!", time.Hour)
	return New(db, tokens), db
}

func validInput() service.RegisterInput {
	return service.RegisterInput{
		Email:    "farmer@example.com",
		Password: "correct-horse",
		Name:     "Farmer",
		Services: []string{entities.ServiceFarm, entities.ServiceLand},
	}
}

func TestRegisterDefaults(t *testing.T) {
	s, _ := newService(t)

	u, err := s.Register(validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, entities.RoleFarmer, u.Role)
	assert.Equal(t, entities.StatusActive, u.Status)
	assert.NotEqual(t, "correct-horse", u.PasswordHash)
}

func TestRegisterRejectsUnknownService(t *testing.T) {
	s, _ := newService(t)

	in := validInput()
	in.Services = []string{entities.ServiceFarm, "KUBE_OCEAN"}
	_, err := s.Register(in)
	assert.ErrorIs(t, err, service.ErrInvalidService)
}

func TestRegisterRejectsB2BWithoutCompany(t *testing.T) {
	s, _ := newService(t)

	in := validInput()
	in.BusinessType = "B2B"
	_, err := s.Register(in)
	assert.ErrorIs(t, err, service.ErrCompanyRequired)

	in.CompanyName = "Kube Ltd"
	_, err = s.Register(in)
	assert.NoError(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	s, _ := newService(t)

	_, err := s.Register(validInput())
	require.NoError(t, err)
	_, err = s.Register(validInput())
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLoginHappyPath(t *testing.T) {
	s, _ := newService(t)
	_, err := s.Register(validInput())
	require.NoError(t, err)

	u, tok, err := s.Login("farmer@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, "farmer@example.com", u.Email)
}

// Wrong password, unknown email and an inactive account must be
// indistinguishable to the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	s, db := newService(t)
	_, err := s.Register(validInput())
	require.NoError(t, err)

	_, _, err = s.Login("farmer@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = s.Login("nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	require.NoError(t, db.Model(&entities.User{}).
		Where("email = ?", "farmer@example.com").
		Update("status", entities.StatusSuspended).Error)
	_, _, err = s.Login("farmer@example.com", "correct-horse")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	s, _ := newService(t)
	u, err := s.Register(validInput())
	require.NoError(t, err)

	err = s.ChangePassword(u.ID, "wrong", "next-password")
	assert.ErrorIs(t, err, service.ErrWrongPassword)

	require.NoError(t, s.ChangePassword(u.ID, "correct-horse", "next-password"))

	_, _, err = s.Login("farmer@example.com", "correct-horse")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, _, err = s.Login("farmer@example.com", "next-password")
	assert.NoError(t, err)
}

func TestRefreshIssuesToken(t *testing.T) {
	s, _ := newService(t)
	u, err := s.Register(validInput())
	require.NoError(t, err)

	tok, err := s.Refresh(u.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
}

func TestUpdateProfilePartial(t *testing.T) {
	s, _ := newService(t)
	u, err := s.Register(validInput())
	require.NoError(t, err)

	name := "Renamed"
	got, err := s.UpdateProfile(u.ID, service.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, u.Email, got.Email)
}
