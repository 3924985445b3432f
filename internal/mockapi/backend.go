package mockapi

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"voltswap_client/internal/api"
	"voltswap_client/internal/events"
	"voltswap_client/internal/middleware"
	"voltswap_client/internal/models"
	"voltswap_client/internal/session"
	"voltswap_client/internal/validate"
)

// Fixed per-endpoint delays, milliseconds. Not random and not tunable per
// call: they exist only to exercise loading states during development.
var latencyMS = map[string]int{
	"login":          800,
	"register":       1000,
	"otp":            600,
	"password":       700,
	"profile":        400,
	"vehicles":       500,
	"vehicle-models": 300,
	"stations":       400,
	"booking":        300,
}

// SimulatedBackend implements api.Backend against the in-memory store.
//
// The current user is resolved from the injected session store rather than
// from a token claim. That is a simplification peculiar to the mock, kept
// so local development needs no token plumbing; it is NOT a security
// boundary and must not be treated as one.
type SimulatedBackend struct {
	store  *Store
	sess   session.Store
	bus    *events.Bus
	secret []byte

	// latencyUnit scales the per-endpoint delays; tests pass 0 so they
	// never sleep. Construction-time only.
	latencyUnit time.Duration
}

func NewSimulatedBackend(store *Store, sess session.Store, bus *events.Bus, jwtSecret string) *SimulatedBackend {
	return &SimulatedBackend{
		store:       store,
		sess:        sess,
		bus:         bus,
		secret:      []byte(jwtSecret),
		latencyUnit: time.Millisecond,
	}
}

// WithoutLatency disables the simulated delays. Test use only.
func (m *SimulatedBackend) WithoutLatency() *SimulatedBackend {
	m.latencyUnit = 0
	return m
}

func (m *SimulatedBackend) delay(ctx context.Context, endpoint string) error {
	d := time.Duration(latencyMS[endpoint]) * m.latencyUnit
	if d == 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *SimulatedBackend) current() (*models.Account, error) {
	acc := m.sess.Profile()
	if acc == nil {
		if err := m.sess.Clear(); err != nil {
			logrus.WithError(err).Warn("mockapi: could not clear session")
		}
		m.bus.Publish(events.AuthEvent{
			Kind:    events.KindUnauthorized,
			Status:  http.StatusUnauthorized,
			Message: "Phiên đăng nhập đã hết hạn",
		})
		return nil, api.NewError(http.StatusUnauthorized, "Phiên đăng nhập đã hết hạn")
	}
	return acc, nil
}

func (m *SimulatedBackend) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	if err := m.delay(ctx, "login"); err != nil {
		return nil, err
	}
	acc, err := m.store.Authenticate(email, password)
	if err != nil {
		return nil, err
	}
	token, err := middleware.GenerateToken(m.secret, acc.ID, acc.Role)
	if err != nil {
		return nil, api.NewError(http.StatusInternalServerError, "could not generate token")
	}
	if err := m.sess.SetToken(token); err != nil {
		return nil, err
	}
	if err := m.sess.SetProfile(acc); err != nil {
		return nil, err
	}
	return &api.LoginResult{Token: token, Account: *acc}, nil
}

func (m *SimulatedBackend) Register(ctx context.Context, form validate.RegistrationForm) (*models.Account, error) {
	if err := m.delay(ctx, "register"); err != nil {
		return nil, err
	}
	return m.store.CreateAccount(form)
}

func (m *SimulatedBackend) Logout(ctx context.Context) error {
	return m.sess.Clear()
}

func (m *SimulatedBackend) RequestOTP(ctx context.Context, email string) error {
	if err := m.delay(ctx, "otp"); err != nil {
		return err
	}
	ch, err := m.store.IssueOTP(email)
	if err != nil {
		return err
	}
	// No mail gateway locally; the code lands in the dev log instead.
	logrus.WithFields(logrus.Fields{"email": email, "code": ch.Code}).Info("mockapi: OTP issued")
	return nil
}

func (m *SimulatedBackend) VerifyOTP(ctx context.Context, email, code string) error {
	if err := m.delay(ctx, "otp"); err != nil {
		return err
	}
	return m.store.VerifyOTP(email, code)
}

func (m *SimulatedBackend) ForgotPassword(ctx context.Context, email string) error {
	if err := m.delay(ctx, "password"); err != nil {
		return err
	}
	token, err := m.store.IssueResetToken(email)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"email": email, "token": token}).Info("mockapi: reset token issued")
	return nil
}

func (m *SimulatedBackend) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := m.delay(ctx, "password"); err != nil {
		return err
	}
	return m.store.ResetPassword(token, newPassword)
}

func (m *SimulatedBackend) Profile(ctx context.Context) (*models.Account, error) {
	if err := m.delay(ctx, "profile"); err != nil {
		return nil, err
	}
	acc, err := m.current()
	if err != nil {
		return nil, err
	}
	return m.store.AccountByID(acc.ID)
}

func (m *SimulatedBackend) UpdateProfile(ctx context.Context, upd api.ProfileUpdate) (*models.Account, error) {
	if err := m.delay(ctx, "profile"); err != nil {
		return nil, err
	}
	acc, err := m.current()
	if err != nil {
		return nil, err
	}
	updated, err := m.store.UpdateAccount(acc.ID, upd.Fullname, upd.Phone)
	if err != nil {
		return nil, err
	}
	if err := m.sess.SetProfile(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (m *SimulatedBackend) AccountByID(ctx context.Context, id string) (*models.Account, error) {
	if err := m.delay(ctx, "profile"); err != nil {
		return nil, err
	}
	return m.store.AccountByID(id)
}

func (m *SimulatedBackend) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	if err := m.delay(ctx, "vehicles"); err != nil {
		return nil, err
	}
	acc, err := m.current()
	if err != nil {
		return nil, err
	}
	return m.store.VehiclesByAccount(acc.ID), nil
}

func (m *SimulatedBackend) CreateVehicle(ctx context.Context, form validate.VehicleForm) (*models.Vehicle, error) {
	if err := m.delay(ctx, "vehicles"); err != nil {
		return nil, err
	}
	acc, err := m.current()
	if err != nil {
		return nil, err
	}
	return m.store.CreateVehicle(acc.ID, form)
}

func (m *SimulatedBackend) UpdateVehicle(ctx context.Context, id string, form validate.VehicleForm) (*models.Vehicle, error) {
	if err := m.delay(ctx, "vehicles"); err != nil {
		return nil, err
	}
	acc, err := m.current()
	if err != nil {
		return nil, err
	}
	return m.store.UpdateVehicle(acc.ID, id, form)
}

func (m *SimulatedBackend) DeleteVehicle(ctx context.Context, id string) error {
	if err := m.delay(ctx, "vehicles"); err != nil {
		return err
	}
	acc, err := m.current()
	if err != nil {
		return err
	}
	return m.store.DeleteVehicle(acc.ID, id)
}

func (m *SimulatedBackend) VehicleModels(ctx context.Context) ([]models.VehicleModel, error) {
	if err := m.delay(ctx, "vehicle-models"); err != nil {
		return nil, err
	}
	return m.store.VehicleModels(), nil
}

func (m *SimulatedBackend) Stations(ctx context.Context) ([]models.Station, error) {
	if err := m.delay(ctx, "stations"); err != nil {
		return nil, err
	}
	return m.store.Stations(), nil
}

func (m *SimulatedBackend) StationByID(ctx context.Context, id string) (*models.Station, error) {
	if err := m.delay(ctx, "stations"); err != nil {
		return nil, err
	}
	return m.store.StationByID(id)
}

func (m *SimulatedBackend) BookingByID(ctx context.Context, id string) (*models.Booking, error) {
	if err := m.delay(ctx, "booking"); err != nil {
		return nil, err
	}
	return m.store.BookingByID(id)
}
