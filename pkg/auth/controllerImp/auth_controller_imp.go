package controllerImp

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	svc "kubeterra/pkg/auth/service"
	"kubeterra/pkg/respond"
)

type AuthCtrl struct {
	svc svc.AuthService
	log zerolog.Logger
}

func New(s svc.AuthService, log zerolog.Logger) *AuthCtrl { return &AuthCtrl{svc: s, log: log} }

type registerReq struct {
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=8"`
	Name         string   `json:"name" validate:"required"`
	Phone        string   `json:"phone"`
	Role         string   `json:"role" validate:"omitempty,oneof=FARMER RANGER ANALYST"`
	BusinessType string   `json:"businessType" validate:"omitempty,oneof=B2C B2B"`
	CompanyName  string   `json:"companyName"`
	Services     []string `json:"services"`
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "email, name and a password of at least 8 characters are required")
	}
	u, err := h.svc.Register(svc.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         req.Role,
		BusinessType: req.BusinessType,
		CompanyName:  req.CompanyName,
		Services:     req.Services,
	})
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrInvalidService),
			errors.Is(err, svc.ErrCompanyRequired),
			errors.Is(err, svc.ErrEmailTaken):
			return respond.Fail(c, 400, err.Error())
		}
		h.log.Error().Err(err).Msg("register")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.Created(c, u)
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "email and password are required")
	}
	u, tok, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, svc.ErrInvalidCredentials) {
			return respond.Fail(c, 401, "invalid credentials")
		}
		h.log.Error().Err(err).Msg("login")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, map[string]any{"user": u, "token": tok})
}

func (h *AuthCtrl) Profile(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	u, err := h.svc.Profile(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "user not found")
		}
		h.log.Error().Err(err).Msg("profile")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, u)
}

type updateProfileReq struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"companyName"`
}

func (h *AuthCtrl) UpdateProfile(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	u, err := h.svc.UpdateProfile(uid, svc.ProfileUpdate{
		Name:        req.Name,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 404, "user not found")
		}
		h.log.Error().Err(err).Msg("update profile")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, u)
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

func (h *AuthCtrl) ChangePassword(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, 400, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Fail(c, 400, "currentPassword and a newPassword of at least 8 characters are required")
	}
	if err := h.svc.ChangePassword(uid, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, svc.ErrWrongPassword):
			return respond.Fail(c, 401, "current password is incorrect")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return respond.Fail(c, 404, "user not found")
		}
		h.log.Error().Err(err).Msg("change password")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, map[string]string{"status": "password changed"})
}

func (h *AuthCtrl) Refresh(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	tok, err := h.svc.Refresh(uid)
	if err != nil {
		if errors.Is(err, svc.ErrInvalidCredentials) || errors.Is(err, gorm.ErrRecordNotFound) {
			return respond.Fail(c, 401, "invalid credentials")
		}
		h.log.Error().Err(err).Msg("refresh")
		return respond.Fail(c, 500, "internal error")
	}
	return respond.OK(c, map[string]string{"token": tok})
}
