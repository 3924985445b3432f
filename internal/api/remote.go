package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"voltswap_client/internal/events"
	"voltswap_client/internal/models"
	"voltswap_client/internal/session"
	"voltswap_client/internal/validate"
)

// RemoteBackend is the HTTP client wrapper around the real REST backend.
// It attaches the bearer token from the session store on every request and
// handles auth failures globally: 401 clears the stored credentials and
// publishes an unauthorized event, 403 publishes forbidden without
// touching the session.
type RemoteBackend struct {
	base string
	http *http.Client
	sess session.Store
	bus  *events.Bus
}

func NewRemoteBackend(baseURL string, sess session.Store, bus *events.Bus) *RemoteBackend {
	return &RemoteBackend{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
		sess: sess,
		bus:  bus,
	}
}

func (r *RemoteBackend) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := r.sess.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env Envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return NewError(resp.StatusCode, "unexpected response from server")
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if err := r.sess.Clear(); err != nil {
			logrus.WithError(err).Warn("remote: could not clear session after 401")
		}
		r.bus.Publish(events.AuthEvent{
			Kind:    events.KindUnauthorized,
			Status:  resp.StatusCode,
			Message: env.Message,
		})
		return NewError(resp.StatusCode, env.Message)
	case http.StatusForbidden:
		r.bus.Publish(events.AuthEvent{
			Kind:    events.KindForbidden,
			Status:  resp.StatusCode,
			Message: env.Message,
		})
		return NewError(resp.StatusCode, env.Message)
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return NewError(resp.StatusCode, msg)
	}

	if out != nil && len(env.Payload) > 0 {
		return json.Unmarshal(env.Payload, out)
	}
	return nil
}

func (r *RemoteBackend) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := r.do(ctx, http.MethodPost, "/user/login", body, &res); err != nil {
		return nil, err
	}
	if err := r.sess.SetToken(res.Token); err != nil {
		return nil, err
	}
	if err := r.sess.SetProfile(&res.Account); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *RemoteBackend) Register(ctx context.Context, form validate.RegistrationForm) (*models.Account, error) {
	var acc models.Account
	if err := r.do(ctx, http.MethodPost, "/user/register", form, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *RemoteBackend) Logout(ctx context.Context) error {
	// Token invalidation is server-side; locally the session just goes away.
	return r.sess.Clear()
}

func (r *RemoteBackend) RequestOTP(ctx context.Context, email string) error {
	return r.do(ctx, http.MethodPost, "/user/request-otp", map[string]string{"email": email}, nil)
}

func (r *RemoteBackend) VerifyOTP(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "otp": code}
	return r.do(ctx, http.MethodPost, "/user/verify-otp", body, nil)
}

func (r *RemoteBackend) ForgotPassword(ctx context.Context, email string) error {
	return r.do(ctx, http.MethodPost, "/user/forgot-password", map[string]string{"email": email}, nil)
}

func (r *RemoteBackend) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "password": newPassword}
	return r.do(ctx, http.MethodPost, "/user/reset-password", body, nil)
}

func (r *RemoteBackend) Profile(ctx context.Context) (*models.Account, error) {
	var acc models.Account
	if err := r.do(ctx, http.MethodGet, "/user/profile", nil, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *RemoteBackend) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.Account, error) {
	var acc models.Account
	if err := r.do(ctx, http.MethodPut, "/user/profile", upd, &acc); err != nil {
		return nil, err
	}
	if err := r.sess.SetProfile(&acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *RemoteBackend) AccountByID(ctx context.Context, id string) (*models.Account, error) {
	var acc models.Account
	if err := r.do(ctx, http.MethodGet, "/user/id/"+id, nil, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *RemoteBackend) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.do(ctx, http.MethodGet, "/vehicles", nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *RemoteBackend) CreateVehicle(ctx context.Context, form validate.VehicleForm) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := r.do(ctx, http.MethodPost, "/vehicles", form, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *RemoteBackend) UpdateVehicle(ctx context.Context, id string, form validate.VehicleForm) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := r.do(ctx, http.MethodPut, "/vehicles/"+id, form, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *RemoteBackend) DeleteVehicle(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, "/vehicles/"+id, nil, nil)
}

func (r *RemoteBackend) VehicleModels(ctx context.Context) ([]models.VehicleModel, error) {
	var list []models.VehicleModel
	if err := r.do(ctx, http.MethodGet, "/vehicle-model", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *RemoteBackend) Stations(ctx context.Context) ([]models.Station, error) {
	var list []models.Station
	if err := r.do(ctx, http.MethodGet, "/station", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *RemoteBackend) StationByID(ctx context.Context, id string) (*models.Station, error) {
	var st models.Station
	if err := r.do(ctx, http.MethodGet, "/station/"+id, nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *RemoteBackend) BookingByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.do(ctx, http.MethodGet, fmt.Sprintf("/booking/%s", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
