package mockapi

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"voltswap_client/internal/api"
	"voltswap_client/internal/models"
	"voltswap_client/internal/validate"
)

// Messages mirrored from the real backend; consumers match on these.
const (
	MsgEmailTaken   = "Email đã được sử dụng"
	MsgVINTaken     = "Số VIN đã được sử dụng"
	MsgVINImmutable = "Không thể thay đổi số VIN"
	MsgBadLogin     = "Email hoặc mật khẩu không đúng"
	MsgOTPInvalid   = "Mã OTP không hợp lệ"
	MsgOTPExpired   = "Mã OTP đã hết hạn"
	MsgOTPTooMany   = "Nhập sai quá nhiều lần, vui lòng yêu cầu mã mới"
)

const maxOTPAttempts = 5

type resetToken struct {
	email     string
	expiresAt time.Time
}

// Store is the in-memory backend state: slices instead of tables, a mutex
// instead of transactions. It enforces the invariants that matter for
// correctness: unique email, unique immutable VIN, ownership scoping, OTP
// expiry.
type Store struct {
	mu            sync.Mutex
	accounts      []*models.Account
	vehicles      []*models.Vehicle
	vehicleModels []models.VehicleModel
	stations      []models.Station
	bookings      []*models.Booking
	otps          map[string]*models.OTPChallenge
	resetTokens   map[string]resetToken

	otpTTL time.Duration
	now    func() time.Time
}

func NewStore(otpTTL time.Duration) *Store {
	return &Store{
		otps:        map[string]*models.OTPChallenge{},
		resetTokens: map[string]resetToken{},
		otpTTL:      otpTTL,
		now:         time.Now,
	}
}

func (s *Store) CreateAccount(form validate.RegistrationForm) (*models.Account, error) {
	if errs := validate.Registration(form); !errs.OK() {
		msg := errs.First("fullname", "email", "phone", "password", "confirm_password")
		return nil, api.NewError(http.StatusBadRequest, msg)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if strings.EqualFold(acc.Email, form.Email) {
			return nil, api.NewError(http.StatusBadRequest, MsgEmailTaken)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, api.NewError(http.StatusInternalServerError, "could not hash password")
	}

	acc := &models.Account{
		ID:        uuid.NewString(),
		Email:     form.Email,
		Phone:     form.Phone,
		Fullname:  form.Fullname,
		Password:  string(hash),
		Role:      models.RoleDriver,
		Status:    models.AccountActive,
		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}
	s.accounts = append(s.accounts, acc)

	out := *acc
	return &out, nil
}

func (s *Store) Authenticate(email, password string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if strings.EqualFold(acc.Email, email) {
			if bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password)) != nil {
				return nil, api.NewError(http.StatusUnauthorized, MsgBadLogin)
			}
			out := *acc
			return &out, nil
		}
	}
	return nil, api.NewError(http.StatusUnauthorized, MsgBadLogin)
}

func (s *Store) AccountByID(id string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.ID == id {
			out := *acc
			return &out, nil
		}
	}
	return nil, api.NewError(http.StatusNotFound, "Không tìm thấy tài khoản")
}

func (s *Store) UpdateAccount(id, fullname, phone string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.ID == id {
			if fullname != "" {
				acc.Fullname = fullname
			}
			if phone != "" {
				if !validate.Phone(phone) {
					return nil, api.NewError(http.StatusBadRequest, "Số điện thoại không hợp lệ")
				}
				acc.Phone = phone
			}
			acc.UpdatedAt = s.now()
			out := *acc
			return &out, nil
		}
	}
	return nil, api.NewError(http.StatusNotFound, "Không tìm thấy tài khoản")
}

// IssueOTP creates a fresh 6-digit challenge for the email, replacing any
// prior one. OTP challenges exist only for registration, so an email that
// already belongs to an account is rejected here, before any code goes
// out: the flow must stay on the form step. The mock does not invalidate
// prior codes server-side on resend; replacing the map entry has the same
// visible effect.
func (s *Store) IssueOTP(email string) (*models.OTPChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if strings.EqualFold(acc.Email, email) {
			return nil, api.NewError(http.StatusBadRequest, MsgEmailTaken)
		}
	}

	ch := &models.OTPChallenge{
		Email:     email,
		Code:      fmt.Sprintf("%06d", rand.Intn(1000000)),
		ExpiresAt: s.now().Add(s.otpTTL),
	}
	s.otps[strings.ToLower(email)] = ch
	return ch, nil
}

func (s *Store) VerifyOTP(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.otps[strings.ToLower(email)]
	if !ok || ch.Used {
		return api.NewError(http.StatusBadRequest, MsgOTPInvalid)
	}
	if s.now().After(ch.ExpiresAt) {
		return api.NewError(http.StatusBadRequest, MsgOTPExpired)
	}
	if ch.Attempts >= maxOTPAttempts {
		return api.NewError(http.StatusTooManyRequests, MsgOTPTooMany)
	}
	if ch.Code != code {
		ch.Attempts++
		return api.NewError(http.StatusBadRequest, MsgOTPInvalid)
	}
	ch.Used = true
	return nil
}

func (s *Store) IssueResetToken(email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if strings.EqualFold(acc.Email, email) {
			token := uuid.NewString()
			s.resetTokens[token] = resetToken{email: acc.Email, expiresAt: s.now().Add(15 * time.Minute)}
			return token, nil
		}
	}
	return "", api.NewError(http.StatusNotFound, "Email chưa được đăng ký")
}

func (s *Store) ResetPassword(token, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, ok := s.resetTokens[token]
	if !ok || s.now().After(rt.expiresAt) {
		return api.NewError(http.StatusBadRequest, "Liên kết đặt lại mật khẩu không hợp lệ hoặc đã hết hạn")
	}
	if !validate.Password(newPassword) {
		return api.NewError(http.StatusBadRequest, "Mật khẩu tối thiểu 8 ký tự, gồm chữ và số")
	}

	for _, acc := range s.accounts {
		if strings.EqualFold(acc.Email, rt.email) {
			hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
			if err != nil {
				return api.NewError(http.StatusInternalServerError, "could not hash password")
			}
			acc.Password = string(hash)
			acc.UpdatedAt = s.now()
			delete(s.resetTokens, token)
			return nil
		}
	}
	return api.NewError(http.StatusNotFound, "Không tìm thấy tài khoản")
}

func (s *Store) VehiclesByAccount(accountID string) []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Vehicle
	for _, v := range s.vehicles {
		if v.AccountID == accountID {
			out = append(out, *v)
		}
	}
	return out
}

func (s *Store) CreateVehicle(accountID string, form validate.VehicleForm) (*models.Vehicle, error) {
	if errs := validate.Vehicle(form); !errs.OK() {
		msg := errs.First("vin", "license_plate", "model_id")
		return nil, api.NewError(http.StatusBadRequest, msg)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.vehicles {
		if v.VIN == form.VIN {
			return nil, api.NewError(http.StatusConflict, MsgVINTaken)
		}
	}
	if s.vehicleModelLocked(form.ModelID) == nil {
		return nil, api.NewError(http.StatusBadRequest, "Dòng xe không tồn tại")
	}

	v := &models.Vehicle{
		ID:           uuid.NewString(),
		AccountID:    accountID,
		VIN:          form.VIN,
		ModelID:      form.ModelID,
		LicensePlate: form.LicensePlate,
		BatterySoH:   100,
		CreatedAt:    s.now(),
		UpdatedAt:    s.now(),
	}
	s.vehicles = append(s.vehicles, v)

	out := *v
	return &out, nil
}

func (s *Store) UpdateVehicle(accountID, id string, form validate.VehicleForm) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.vehicles {
		if v.ID != id || v.AccountID != accountID {
			continue
		}
		if form.VIN != "" && form.VIN != v.VIN {
			return nil, api.NewError(http.StatusBadRequest, MsgVINImmutable)
		}
		if form.LicensePlate != "" {
			if !validate.LicensePlate(form.LicensePlate) {
				return nil, api.NewError(http.StatusBadRequest, "Biển số không hợp lệ")
			}
			v.LicensePlate = form.LicensePlate
		}
		if form.ModelID != "" {
			if s.vehicleModelLocked(form.ModelID) == nil {
				return nil, api.NewError(http.StatusBadRequest, "Dòng xe không tồn tại")
			}
			v.ModelID = form.ModelID
		}
		v.UpdatedAt = s.now()
		out := *v
		return &out, nil
	}
	// Scoped lookup: a foreign vehicle is indistinguishable from a missing one.
	return nil, api.NewError(http.StatusNotFound, "Không tìm thấy phương tiện")
}

func (s *Store) DeleteVehicle(accountID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.vehicles {
		if v.ID == id && v.AccountID == accountID {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			return nil
		}
	}
	return api.NewError(http.StatusNotFound, "Không tìm thấy phương tiện")
}

func (s *Store) VehicleModels() []models.VehicleModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.VehicleModel(nil), s.vehicleModels...)
}

func (s *Store) vehicleModelLocked(id string) *models.VehicleModel {
	for i := range s.vehicleModels {
		if s.vehicleModels[i].ID == id {
			return &s.vehicleModels[i]
		}
	}
	return nil
}

func (s *Store) Stations() []models.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Station(nil), s.stations...)
}

func (s *Store) StationByID(id string) (*models.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.stations {
		if st.ID == id {
			out := st
			return &out, nil
		}
	}
	return nil, api.NewError(http.StatusNotFound, "Không tìm thấy trạm")
}

func (s *Store) BookingByID(id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			out := *b
			return &out, nil
		}
	}
	return nil, api.NewError(http.StatusNotFound, "Không tìm thấy lượt đặt chỗ")
}

// AddBooking is a fixture hook: bookings are created by the real backend,
// never through this client, so the mock only needs a way to seed them.
func (s *Store) AddBooking(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := b
	s.bookings = append(s.bookings, &cp)
}
