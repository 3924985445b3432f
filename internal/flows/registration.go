package flows

import (
	"context"
	"errors"
	"time"

	"voltswap_client/internal/api"
	"voltswap_client/internal/models"
	"voltswap_client/internal/validate"
)

// RegistrationBackend is the slice of the API this flow touches.
type RegistrationBackend interface {
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	Register(ctx context.Context, form validate.RegistrationForm) (*models.Account, error)
}

// Registration states. Failed is reached only when OTP verification
// succeeded but account creation did not; OTP errors keep the flow in
// OTPPending so the user can retry or resend.
const (
	StateForm       = "form"
	StateOTPPending = "otp_pending"
	StateVerified   = "verified"
	StateFailed     = "failed"
)

// RedirectDelay is how long the confirmation screen stays up before the
// UI moves to login.
const RedirectDelay = 2 * time.Second

var errWrongState = errors.New("operation not allowed in current state")

// Registration sequences the signup flow: Form -> OTPPending ->
// Verified|Failed. The form payload is buffered in memory across the OTP
// step and never persisted.
//
// Verification and account creation are two sequential backend calls, not
// one atomic operation. If the process dies between them the email is
// verified but unregistered; there is no compensating action on this side,
// the recovery is a backend contract gap.
type Registration struct {
	backend  RegistrationBackend
	now      func() time.Time
	cooldown time.Duration

	state    string
	form     validate.RegistrationForm
	otpInput string
	lastSent time.Time

	// FieldErrs holds per-field form messages, ErrMsg the inline flow error.
	FieldErrs validate.FieldErrors
	ErrMsg    string
}

func NewRegistration(backend RegistrationBackend, resendCooldown time.Duration) *Registration {
	return &Registration{
		backend:  backend,
		now:      time.Now,
		cooldown: resendCooldown,
		state:    StateForm,
	}
}

func (r *Registration) State() string { return r.state }

// Submit validates the form shape client-side and, only if it passes,
// requests an OTP challenge and advances to OTPPending.
func (r *Registration) Submit(ctx context.Context, form validate.RegistrationForm) error {
	if r.state != StateForm {
		return errWrongState
	}

	r.FieldErrs = validate.Registration(form)
	if !r.FieldErrs.OK() {
		return nil
	}

	if err := r.backend.RequestOTP(ctx, form.Email); err != nil {
		r.ErrMsg = api.Message(err)
		return nil
	}

	r.form = form
	r.otpInput = ""
	r.ErrMsg = ""
	r.lastSent = r.now()
	r.state = StateOTPPending
	return nil
}

// InputOTP mirrors typing into the code box: digits only, max six.
func (r *Registration) InputOTP(raw string) {
	r.otpInput = validate.FilterOTPCode(raw)
}

func (r *Registration) OTPInput() string { return r.otpInput }

// ResendRemaining is the countdown shown next to the resend link,
// in whole seconds, zero once resend is allowed.
func (r *Registration) ResendRemaining() int {
	elapsed := r.now().Sub(r.lastSent)
	if elapsed >= r.cooldown {
		return 0
	}
	return int((r.cooldown - elapsed + time.Second - 1) / time.Second)
}

func (r *Registration) CanResend() bool {
	return r.state == StateOTPPending && r.ResendRemaining() == 0
}

// Resend issues a new challenge and clears the input and error state. It
// does not invalidate a prior unexpired code; that is the server's call.
func (r *Registration) Resend(ctx context.Context) error {
	if !r.CanResend() {
		return errWrongState
	}

	if err := r.backend.RequestOTP(ctx, r.form.Email); err != nil {
		r.ErrMsg = api.Message(err)
		return nil
	}

	r.otpInput = ""
	r.ErrMsg = ""
	r.lastSent = r.now()
	return nil
}

// SubmitOTP verifies the entered code and, on success, immediately creates
// the account with the buffered payload.
func (r *Registration) SubmitOTP(ctx context.Context) error {
	if r.state != StateOTPPending {
		return errWrongState
	}
	if !validate.OTPCode(r.otpInput) {
		r.ErrMsg = "Vui lòng nhập đủ 6 chữ số"
		return nil
	}

	if err := r.backend.VerifyOTP(ctx, r.form.Email, r.otpInput); err != nil {
		r.ErrMsg = api.Message(err)
		return nil
	}

	if _, err := r.backend.Register(ctx, r.form); err != nil {
		// The email is verified at this point; only registration failed.
		r.ErrMsg = api.Message(err)
		r.state = StateFailed
		return nil
	}

	r.ErrMsg = ""
	r.state = StateVerified
	return nil
}

// RetryRegister re-runs only the second step after a Failed state: the
// email is already verified, repeating the OTP would be wrong.
func (r *Registration) RetryRegister(ctx context.Context) error {
	if r.state != StateFailed {
		return errWrongState
	}

	if _, err := r.backend.Register(ctx, r.form); err != nil {
		r.ErrMsg = api.Message(err)
		return nil
	}

	r.ErrMsg = ""
	r.state = StateVerified
	return nil
}

// Back returns to the form, discarding the buffered payload.
func (r *Registration) Back() {
	r.form = validate.RegistrationForm{}
	r.otpInput = ""
	r.ErrMsg = ""
	r.FieldErrs = nil
	r.state = StateForm
}
