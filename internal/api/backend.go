package api

import (
	"context"

	"voltswap_client/internal/models"
	"voltswap_client/internal/validate"
)

// LoginResult is the login payload: the bearer token plus the account it
// belongs to, so the session store can cache both in one step.
type LoginResult struct {
	Token   string         `json:"token"`
	Account models.Account `json:"user"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Fullname string `json:"fullname"`
	Phone    string `json:"phone"`
}

// Backend is the strategy interface between the flows and the REST backend.
// RemoteBackend talks HTTP; mockapi.SimulatedBackend answers locally. The
// implementation is chosen once at startup from configuration, never per
// call. Every method takes a context so callers can cancel in-flight work
// instead of discarding stale results after the fact.
type Backend interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, form validate.RegistrationForm) (*models.Account, error)
	Logout(ctx context.Context) error

	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error

	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error

	Profile(ctx context.Context) (*models.Account, error)
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.Account, error)
	AccountByID(ctx context.Context, id string) (*models.Account, error)

	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, form validate.VehicleForm) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, form validate.VehicleForm) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	VehicleModels(ctx context.Context) ([]models.VehicleModel, error)

	Stations(ctx context.Context) ([]models.Station, error)
	StationByID(ctx context.Context, id string) (*models.Station, error)

	BookingByID(ctx context.Context, id string) (*models.Booking, error)
}
