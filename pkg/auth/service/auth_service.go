package service

import (
	"errors"

	"kubeterra/entities"
)

// Sentinel errors the controller maps to HTTP statuses.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidService     = errors.New("unknown service entitlement")
	ErrCompanyRequired    = errors.New("company name required for B2B accounts")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type RegisterInput struct {
	Email        string
	Password     string
	Name         string
	Phone        string
	Role         string
	BusinessType string
	CompanyName  string
	Services     []string
}

type ProfileUpdate struct {
	Name        *string
	Phone       *string
	CompanyName *string
}

type AuthService interface {
	Register(in RegisterInput) (*entities.User, error)
	// Login returns the user and a signed access token.
	Login(email, password string) (*entities.User, string, error)
	Profile(userID string) (*entities.User, error)
	UpdateProfile(userID string, in ProfileUpdate) (*entities.User, error)
	ChangePassword(userID, current, next string) error
	Refresh(userID string) (string, error)
}
