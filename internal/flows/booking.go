package flows

import (
	"context"

	"voltswap_client/internal/models"
)

// BookingBackend is the slice of the API the wizard touches.
type BookingBackend interface {
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	VehicleModels(ctx context.Context) ([]models.VehicleModel, error)
}

// Booking wizard steps covered by this controller; payment and
// confirmation live further down the flow.
const (
	StepSelectVehicle  = "select_vehicle"
	StepSelectQuantity = "select_quantity"
)

// BookingWizard walks SelectVehicle -> SelectBatteryQuantity. The vehicle
// list is fetched at most once: a caller that already holds the list
// passes it in and no network call happens (decided once at construction).
type BookingWizard struct {
	backend BookingBackend

	vehicles   []models.Vehicle
	prefetched bool
	modelsByID map[string]models.VehicleModel

	step     string
	selected *models.Vehicle
	quantity int
}

func NewBookingWizard(backend BookingBackend, prefetched []models.Vehicle) *BookingWizard {
	return &BookingWizard{
		backend:    backend,
		vehicles:   prefetched,
		prefetched: prefetched != nil,
		step:       StepSelectVehicle,
	}
}

// Start loads the vehicle list (unless prefetched) and the model reference
// data the quantity bounds come from.
func (w *BookingWizard) Start(ctx context.Context) error {
	if !w.prefetched {
		vehicles, err := w.backend.Vehicles(ctx)
		if err != nil {
			return err
		}
		w.vehicles = vehicles
	}

	list, err := w.backend.VehicleModels(ctx)
	if err != nil {
		return err
	}
	w.modelsByID = make(map[string]models.VehicleModel, len(list))
	for _, vm := range list {
		w.modelsByID[vm.ID] = vm
	}
	return nil
}

func (w *BookingWizard) Step() string               { return w.step }
func (w *BookingWizard) Vehicles() []models.Vehicle { return w.vehicles }
func (w *BookingWizard) Selected() *models.Vehicle  { return w.selected }
func (w *BookingWizard) Quantity() int              { return w.quantity }

// SelectVehicle picks a vehicle by id and advances to the quantity step
// with the quantity at its floor of 1.
func (w *BookingWizard) SelectVehicle(id string) bool {
	for i := range w.vehicles {
		if w.vehicles[i].ID == id {
			w.selected = &w.vehicles[i]
			w.quantity = 1
			w.step = StepSelectQuantity
			return true
		}
	}
	return false
}

// slots is the upper bound for the quantity selector: the selected
// vehicle's battery slot count, 1 when the model is unknown.
func (w *BookingWizard) slots() int {
	if w.selected == nil {
		return 1
	}
	if vm, ok := w.modelsByID[w.selected.ModelID]; ok && vm.BatterySlots > 0 {
		return vm.BatterySlots
	}
	return 1
}

func (w *BookingWizard) CanIncrement() bool { return w.selected != nil && w.quantity < w.slots() }
func (w *BookingWizard) CanDecrement() bool { return w.selected != nil && w.quantity > 1 }

// Increment and Decrement clamp to [1, slots]; the buttons disable at the
// bounds, so out-of-range values are unreachable.
func (w *BookingWizard) Increment() {
	if w.CanIncrement() {
		w.quantity++
	}
}

func (w *BookingWizard) Decrement() {
	if w.CanDecrement() {
		w.quantity--
	}
}

// SlotSelection is what the parent receives on continue: ordered slot
// indices 1..quantity. The wizard models "how many", not which physical
// battery.
func (w *BookingWizard) SlotSelection() []int {
	if w.selected == nil {
		return nil
	}
	out := make([]int, w.quantity)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// CanContinue gates the continue button: a vehicle must be chosen, and the
// quantity floor of 1 makes the quantity check always true after that.
func (w *BookingWizard) CanContinue() bool {
	return w.selected != nil && w.quantity >= 1
}
