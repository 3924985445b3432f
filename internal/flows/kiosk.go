package flows

import (
	"context"
	"fmt"
	"time"

	"voltswap_client/internal/api"
	"voltswap_client/internal/models"
)

// KioskBackend is the slice of the API the kiosk touches.
type KioskBackend interface {
	BookingByID(ctx context.Context, id string) (*models.Booking, error)
	AccountByID(ctx context.Context, id string) (*models.Account, error)
}

// Kiosk scan modes. The mode is selected explicitly before scanning; the
// legacy fallback infers it from what resolves and is kept only for old
// integrations.
const (
	ModeNone    = ""
	ModeBooking = "booking"
	ModeUser    = "user"
)

const (
	MsgBookingUsed      = "Booking already used"
	MsgBookingCancelled = "Booking was cancelled"
	MsgInvalidCode      = "Invalid code"
)

// ScanOutcome is what one scan attempt produced. Exactly one of Booking
// and Account is set on success; Reason carries the inline failure
// message otherwise. A successful booking outcome carries the full
// booking so the swap screen needs no re-fetch.
type ScanOutcome struct {
	OK      bool
	Reason  string
	Booking *models.Booking
	Account *models.Account
}

// Kiosk validates scanned QR codes for one physical station. Every
// failure is terminal for that scan attempt: the controller drops back to
// idle and waits for the next scan or manual entry, never retrying on its
// own.
type Kiosk struct {
	backend     KioskBackend
	stationID   string
	stationName string
	now         func() time.Time

	mode       string
	validating bool
}

func NewKiosk(backend KioskBackend, stationID, stationName string) *Kiosk {
	return &Kiosk{
		backend:     backend,
		stationID:   stationID,
		stationName: stationName,
		now:         time.Now,
	}
}

func (k *Kiosk) SetMode(mode string) { k.mode = mode }
func (k *Kiosk) Mode() string        { return k.mode }
func (k *Kiosk) Validating() bool    { return k.validating }

// Validate runs one scan attempt in the selected mode.
func (k *Kiosk) Validate(ctx context.Context, code string) ScanOutcome {
	k.validating = true
	defer func() { k.validating = false }()

	switch k.mode {
	case ModeBooking:
		return k.validateBooking(ctx, code)
	case ModeUser:
		return k.validateUser(ctx, code)
	default:
		// Deprecated: booking first, user only on its failure, generic
		// error only when both fail.
		if out := k.validateBooking(ctx, code); out.OK {
			return out
		}
		if out := k.validateUser(ctx, code); out.OK {
			return out
		}
		return ScanOutcome{Reason: MsgInvalidCode}
	}
}

// validateBooking checks, in order: station match, expiry, status. The
// checks short-circuit, so a booking that is both foreign and expired
// reports only the wrong-station error.
func (k *Kiosk) validateBooking(ctx context.Context, id string) ScanOutcome {
	b, err := k.backend.BookingByID(ctx, id)
	if err != nil {
		return ScanOutcome{Reason: api.Message(err)}
	}

	if b.StationID != k.stationID {
		return ScanOutcome{Reason: fmt.Sprintf(
			"Booking belongs to %s, this kiosk is at %s", b.StationName, k.stationName)}
	}
	if b.ScheduledEnd != nil && b.ScheduledEnd.Before(k.now()) {
		return ScanOutcome{Reason: fmt.Sprintf(
			"Booking expired at %s, now %s",
			b.ScheduledEnd.Format(time.RFC3339), k.now().Format(time.RFC3339))}
	}
	switch b.Status {
	case models.BookingCompleted:
		return ScanOutcome{Reason: MsgBookingUsed}
	case models.BookingCancelled:
		return ScanOutcome{Reason: MsgBookingCancelled}
	}

	return ScanOutcome{OK: true, Booking: b}
}

func (k *Kiosk) validateUser(ctx context.Context, id string) ScanOutcome {
	acc, err := k.backend.AccountByID(ctx, id)
	if err != nil {
		return ScanOutcome{Reason: api.Message(err)}
	}
	return ScanOutcome{OK: true, Account: acc}
}
