package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"voltswap_client/internal/api"
	"voltswap_client/internal/events"
	"voltswap_client/internal/mockapi"
	"voltswap_client/internal/routes"
	"voltswap_client/internal/session"
	"voltswap_client/internal/validate"
)

func newTestServer(t *testing.T) (*httptest.Server, *api.RemoteBackend, session.Store, *events.Bus) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := mockapi.NewStore(5 * time.Minute)
	store.Seed()
	srv := httptest.NewServer(routes.SetupRouter(store, "test-secret"))
	t.Cleanup(srv.Close)

	sess := session.NewMemoryStore()
	bus := events.NewBus()
	return srv, api.NewRemoteBackend(srv.URL, sess, bus), sess, bus
}

func TestRemoteLoginAndVehicles(t *testing.T) {
	_, backend, sess, _ := newTestServer(t)
	ctx := context.Background()

	res, err := backend.Login(ctx, "an.nguyen@example.com", "driver123")
	if err != nil {
		t.Fatal(err)
	}
	if res.Token == "" || res.Account.Email != "an.nguyen@example.com" {
		t.Fatalf("unexpected login result: %+v", res)
	}
	if sess.Token() != res.Token {
		t.Error("bearer token not stored")
	}

	vehicles, err := backend.Vehicles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(vehicles) != 1 || vehicles[0].VIN != "1HGBH41JXMN109186" {
		t.Errorf("vehicles = %+v", vehicles)
	}
}

func TestRemoteDuplicateVINConflict(t *testing.T) {
	_, backend, _, _ := newTestServer(t)
	ctx := context.Background()

	if _, err := backend.Login(ctx, "binh.tran@example.com", "driver123"); err != nil {
		t.Fatal(err)
	}

	_, err := backend.CreateVehicle(ctx, validate.VehicleForm{
		VIN: "1HGBH41JXMN109186", ModelID: "vm-theon", LicensePlate: "51B-99999",
	})
	if api.StatusOf(err) != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
	if api.Message(err) != mockapi.MsgVINTaken {
		t.Errorf("message = %q", api.Message(err))
	}
}

func TestRemoteUnauthorizedClearsSessionAndSignals(t *testing.T) {
	_, backend, sess, bus := newTestServer(t)
	ctx := context.Background()
	ch := bus.Subscribe()

	_ = sess.SetToken("not-a-valid-token")
	_, err := backend.Profile(ctx)
	if api.StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if sess.Token() != "" {
		t.Error("401 must clear stored credentials")
	}

	select {
	case e := <-ch:
		if e.Kind != events.KindUnauthorized {
			t.Errorf("kind = %q", e.Kind)
		}
	default:
		t.Error("expected an unauthorized event")
	}
}

func TestRemoteRegistrationEndToEnd(t *testing.T) {
	_, backend, _, _ := newTestServer(t)
	ctx := context.Background()

	form := validate.RegistrationForm{
		Fullname:        "Lê Văn Cường",
		Email:           "cuong.le@example.com",
		Phone:           "0911222333",
		Password:        "matkhau1",
		ConfirmPassword: "matkhau1",
	}

	if err := backend.RequestOTP(ctx, form.Email); err != nil {
		t.Fatal(err)
	}

	acc, err := backend.Register(ctx, form)
	if err != nil {
		t.Fatal(err)
	}
	if acc.Email != form.Email || acc.ID == "" {
		t.Errorf("account = %+v", acc)
	}

	// Registering the same email again surfaces the backend message.
	_, err = backend.Register(ctx, form)
	if api.Message(err) != mockapi.MsgEmailTaken {
		t.Errorf("message = %q, want %q", api.Message(err), mockapi.MsgEmailTaken)
	}

	if _, err := backend.Login(ctx, form.Email, form.Password); err != nil {
		t.Fatalf("fresh account cannot log in: %v", err)
	}
}

func TestRemoteBookingAndStationLookups(t *testing.T) {
	_, backend, _, _ := newTestServer(t)
	ctx := context.Background()

	if _, err := backend.Login(ctx, "an.nguyen@example.com", "driver123"); err != nil {
		t.Fatal(err)
	}

	b, err := backend.BookingByID(ctx, "bk-0001")
	if err != nil {
		t.Fatal(err)
	}
	if b.StationID != "st-0001" || b.StationName == "" {
		t.Errorf("booking = %+v", b)
	}

	st, err := backend.StationByID(ctx, "st-0001")
	if err != nil {
		t.Fatal(err)
	}
	if st.Name != b.StationName {
		t.Errorf("station %q vs booking station %q", st.Name, b.StationName)
	}

	if _, err := backend.BookingByID(ctx, "bk-none"); api.StatusOf(err) != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
