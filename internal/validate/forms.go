package validate

import "strings"

// RegistrationForm is the buffered payload collected before the OTP step.
type RegistrationForm struct {
	Fullname        string `json:"fullname"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// VehicleForm is the create/update input for a vehicle.
type VehicleForm struct {
	VIN          string `json:"vin"`
	ModelID      string `json:"model_id"`
	LicensePlate string `json:"license_plate"`
}

// FieldErrors maps field name to the inline message shown under it.
type FieldErrors map[string]string

func (e FieldErrors) OK() bool { return len(e) == 0 }

// First returns the message of the first failing field in the given order,
// so a multi-field failure always surfaces the same message. Failing fields
// not named fall through last.
func (e FieldErrors) First(fields ...string) string {
	for _, f := range fields {
		if msg, ok := e[f]; ok {
			return msg
		}
	}
	for _, msg := range e {
		return msg
	}
	return ""
}

// Registration validates the form shape before any network call is allowed.
func Registration(f RegistrationForm) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Fullname) == "" {
		errs["fullname"] = "Vui lòng nhập họ tên"
	}
	if !Email(f.Email) {
		errs["email"] = "Email không hợp lệ"
	}
	if !Phone(f.Phone) {
		errs["phone"] = "Số điện thoại không hợp lệ"
	}
	if !Password(f.Password) {
		errs["password"] = "Mật khẩu tối thiểu 8 ký tự, gồm chữ và số"
	}
	if f.Password != f.ConfirmPassword {
		errs["confirm_password"] = "Mật khẩu xác nhận không khớp"
	}
	return errs
}

// Vehicle validates the vehicle form shape.
func Vehicle(f VehicleForm) FieldErrors {
	errs := FieldErrors{}
	if !VIN(f.VIN) {
		errs["vin"] = "Số VIN phải gồm 17 ký tự, không chứa I/O/Q"
	}
	if !LicensePlate(f.LicensePlate) {
		errs["license_plate"] = "Biển số không hợp lệ"
	}
	if strings.TrimSpace(f.ModelID) == "" {
		errs["model_id"] = "Vui lòng chọn dòng xe"
	}
	return errs
}
