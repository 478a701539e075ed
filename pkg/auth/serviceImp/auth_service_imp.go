package serviceImp

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kubeterra/entities"
	"kubeterra/pkg/auth/service"
	"kubeterra/pkg/token"
)

var knownServices = map[string]bool{
	entities.ServiceFarm: true,
	entities.ServicePark: true,
	entities.ServiceLand: true,
}

type authSvc struct {
	db     *gorm.DB
	tokens *token.Manager
}

func New(db *gorm.DB, tokens *token.Manager) service.AuthService {
	return &authSvc{db: db, tokens: tokens}
}

func (s *authSvc) Register(in service.RegisterInput) (*entities.User, error) {
	for _, svc := range in.Services {
		if !knownServices[svc] {
			return nil, fmt.Errorf("%w: %s", service.ErrInvalidService, svc)
		}
	}
	if in.BusinessType == "B2B" && in.CompanyName == "" {
		return nil, service.ErrCompanyRequired
	}
	var count int64
	if err := s.db.Model(&entities.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, service.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entities.RoleFarmer
	}
	u := &entities.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Phone:        in.Phone,
		Role:         role,
		Status:       entities.StatusActive,
		BusinessType: in.BusinessType,
		CompanyName:  in.CompanyName,
		Services:     in.Services,
	}
	if err := s.db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// Login deliberately returns the same error for an unknown email, a wrong
// password and a non-ACTIVE account.
func (s *authSvc) Login(email, password string) (*entities.User, string, error) {
	var u entities.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", service.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", service.ErrInvalidCredentials
	}
	if u.Status != entities.StatusActive {
		return nil, "", service.ErrInvalidCredentials
	}
	tok, err := s.tokens.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}
	return &u, tok, nil
}

func (s *authSvc) Profile(userID string) (*entities.User, error) {
	var u entities.User
	if err := s.db.Where("id = ?", userID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *authSvc) UpdateProfile(userID string, in service.ProfileUpdate) (*entities.User, error) {
	u, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}
	upd := map[string]any{}
	if in.Name != nil {
		upd["name"] = *in.Name
	}
	if in.Phone != nil {
		upd["phone"] = *in.Phone
	}
	if in.CompanyName != nil {
		upd["company_name"] = *in.CompanyName
	}
	if len(upd) == 0 {
		return u, nil
	}
	if err := s.db.Model(u).Updates(upd).Error; err != nil {
		return nil, err
	}
	return s.Profile(userID)
}

func (s *authSvc) ChangePassword(userID, current, next string) error {
	u, err := s.Profile(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
		return service.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(u).Update("password_hash", string(hash)).Error
}

// Refresh reissues a token for an already-authenticated user.
func (s *authSvc) Refresh(userID string) (string, error) {
	u, err := s.Profile(userID)
	if err != nil {
		return "", err
	}
	if u.Status != entities.StatusActive {
		return "", service.ErrInvalidCredentials
	}
	return s.tokens.Generate(u.ID, u.Email, u.Role)
}
