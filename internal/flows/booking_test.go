package flows

import (
	"context"
	"testing"

	"voltswap_client/internal/models"
)

type fakeBookingBackend struct {
	vehicleCalls int
	vehicles     []models.Vehicle
	vmodels      []models.VehicleModel
}

func (f *fakeBookingBackend) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	f.vehicleCalls++
	return f.vehicles, nil
}

func (f *fakeBookingBackend) VehicleModels(ctx context.Context) ([]models.VehicleModel, error) {
	return f.vmodels, nil
}

func twoSlotFixture() *fakeBookingBackend {
	return &fakeBookingBackend{
		vehicles: []models.Vehicle{
			{ID: "veh-1", ModelID: "vm-2slot", VIN: "1HGBH41JXMN109186"},
			{ID: "veh-2", ModelID: "vm-1slot", VIN: "JH4KA7561PC008269"},
		},
		vmodels: []models.VehicleModel{
			{ID: "vm-2slot", BatterySlots: 2},
			{ID: "vm-1slot", BatterySlots: 1},
		},
	}
}

func TestBookingQuantityClamp(t *testing.T) {
	f := twoSlotFixture()
	w := NewBookingWizard(f, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	if !w.SelectVehicle("veh-1") {
		t.Fatal("known vehicle not selectable")
	}
	if w.Step() != StepSelectQuantity {
		t.Fatalf("step = %q", w.Step())
	}
	if w.Quantity() != 1 {
		t.Fatalf("quantity starts at %d, want 1", w.Quantity())
	}

	// Floor: decrement disabled at 1.
	if w.CanDecrement() {
		t.Error("decrement must disable at the floor")
	}
	w.Decrement()
	if w.Quantity() != 1 {
		t.Error("quantity fell below 1")
	}

	// Ceiling: battery_slots = 2.
	w.Increment()
	if w.Quantity() != 2 {
		t.Fatalf("quantity = %d, want 2", w.Quantity())
	}
	if w.CanIncrement() {
		t.Error("increment must disable at battery_slots")
	}
	w.Increment()
	if w.Quantity() != 2 {
		t.Error("quantity exceeded battery_slots")
	}
}

func TestBookingSlotSelectionOrdered(t *testing.T) {
	f := twoSlotFixture()
	w := NewBookingWizard(f, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.SelectVehicle("veh-1")
	w.Increment()

	got := w.SlotSelection()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("SlotSelection = %v, want [1 2]", got)
	}
}

func TestBookingSingleSlotVehicle(t *testing.T) {
	f := twoSlotFixture()
	w := NewBookingWizard(f, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.SelectVehicle("veh-2")

	if w.CanIncrement() || w.CanDecrement() {
		t.Error("one-slot vehicle pins quantity at 1")
	}
	if got := w.SlotSelection(); len(got) != 1 || got[0] != 1 {
		t.Errorf("SlotSelection = %v, want [1]", got)
	}
}

func TestBookingPrefetchedSkipsFetch(t *testing.T) {
	f := twoSlotFixture()
	pre := []models.Vehicle{{ID: "veh-9", ModelID: "vm-2slot"}}

	w := NewBookingWizard(f, pre)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if f.vehicleCalls != 0 {
		t.Errorf("vehicleCalls = %d, prefetched list must skip the network", f.vehicleCalls)
	}
	if len(w.Vehicles()) != 1 || w.Vehicles()[0].ID != "veh-9" {
		t.Errorf("wizard not using the supplied list: %v", w.Vehicles())
	}
}

func TestBookingContinueGate(t *testing.T) {
	f := twoSlotFixture()
	w := NewBookingWizard(f, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	if w.CanContinue() {
		t.Error("continue must be disabled before a vehicle is chosen")
	}
	w.SelectVehicle("veh-1")
	if !w.CanContinue() {
		t.Error("continue must enable once a vehicle is chosen")
	}

	if w.SelectVehicle("veh-unknown") {
		t.Error("unknown vehicle id must not select")
	}
}
