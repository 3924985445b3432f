package mockapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"voltswap_client/internal/api"
	"voltswap_client/internal/events"
	"voltswap_client/internal/session"
	"voltswap_client/internal/validate"
)

func testBackend() (*SimulatedBackend, *session.MemoryStore, *events.Bus) {
	store := NewStore(5 * time.Minute)
	store.Seed()
	sess := session.NewMemoryStore()
	bus := events.NewBus()
	return NewSimulatedBackend(store, sess, bus, "test-secret").WithoutLatency(), sess, bus
}

func TestSimulatedLoginStoresSession(t *testing.T) {
	m, sess, _ := testBackend()

	res, err := m.Login(context.Background(), "an.nguyen@example.com", "driver123")
	if err != nil {
		t.Fatal(err)
	}
	if res.Token == "" {
		t.Error("expected a token")
	}
	if sess.Token() != res.Token {
		t.Error("token not stored in session")
	}
	if p := sess.Profile(); p == nil || p.Email != "an.nguyen@example.com" {
		t.Errorf("profile not cached: %+v", p)
	}
}

func TestSimulatedRequiresSession(t *testing.T) {
	m, _, bus := testBackend()
	ch := bus.Subscribe()

	_, err := m.Vehicles(context.Background())
	if api.StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %v", err)
	}

	select {
	case e := <-ch:
		if e.Kind != events.KindUnauthorized {
			t.Errorf("kind = %q, want unauthorized", e.Kind)
		}
	default:
		t.Error("expected an unauthorized event")
	}
}

func TestSimulatedVehicleCRUD(t *testing.T) {
	m, _, _ := testBackend()
	ctx := context.Background()

	if _, err := m.Login(ctx, "an.nguyen@example.com", "driver123"); err != nil {
		t.Fatal(err)
	}

	created, err := m.CreateVehicle(ctx, validate.VehicleForm{
		VIN: "5YJSA1DN5CFP01657", ModelID: "vm-vento", LicensePlate: "29C-4444",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.AccountID != "acc-0001" {
		t.Errorf("vehicle owned by %q, want current user", created.AccountID)
	}

	list, err := m.Vehicles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("expected seeded + created vehicle, got %d", len(list))
	}

	if err := m.DeleteVehicle(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
}

func TestSimulatedLatencyCancellation(t *testing.T) {
	store := NewStore(5 * time.Minute)
	store.Seed()
	m := NewSimulatedBackend(store, session.NewMemoryStore(), events.NewBus(), "test-secret")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Stations(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled during simulated latency, got %v", err)
	}
}

func TestSimulatedLogout(t *testing.T) {
	m, sess, _ := testBackend()
	ctx := context.Background()

	if _, err := m.Login(ctx, "an.nguyen@example.com", "driver123"); err != nil {
		t.Fatal(err)
	}
	if err := m.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if sess.Token() != "" || sess.Profile() != nil {
		t.Error("logout should clear the session")
	}
}
