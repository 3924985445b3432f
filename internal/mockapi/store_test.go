package mockapi

import (
	"net/http"
	"testing"
	"time"

	"voltswap_client/internal/api"
	"voltswap_client/internal/validate"
)

func testForm(email string) validate.RegistrationForm {
	return validate.RegistrationForm{
		Fullname:        "Nguyễn Văn An",
		Email:           email,
		Phone:           "0912345678",
		Password:        "matkhau1",
		ConfirmPassword: "matkhau1",
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	s := NewStore(5 * time.Minute)

	if _, err := s.CreateAccount(testForm("an@example.com")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := s.CreateAccount(testForm("AN@example.com"))
	if err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
	if api.Message(err) != MsgEmailTaken {
		t.Errorf("message = %q, want %q", api.Message(err), MsgEmailTaken)
	}
}

func TestIssueOTPRejectsRegisteredEmail(t *testing.T) {
	s := NewStore(5 * time.Minute)
	if _, err := s.CreateAccount(testForm("an@example.com")); err != nil {
		t.Fatal(err)
	}

	// The challenge never gets issued for an email that already has an
	// account, casing aside.
	_, err := s.IssueOTP("AN@example.com")
	if api.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 for registered email, got %v", err)
	}
	if api.Message(err) != MsgEmailTaken {
		t.Errorf("message = %q, want %q", api.Message(err), MsgEmailTaken)
	}
	if err := s.VerifyOTP("an@example.com", "123456"); err == nil {
		t.Fatal("no challenge should exist for the registered email")
	}

	if _, err := s.IssueOTP("moi@example.com"); err != nil {
		t.Fatalf("fresh email rejected: %v", err)
	}
}

func TestCreateAccountFirstErrorDeterministic(t *testing.T) {
	s := NewStore(5 * time.Minute)

	// Every field invalid: the surfaced message must always be the first
	// field's, not whichever the map yields.
	bad := validate.RegistrationForm{}
	_, first := s.CreateAccount(bad)
	want := api.Message(first)
	for i := 0; i < 20; i++ {
		_, err := s.CreateAccount(bad)
		if api.Message(err) != want {
			t.Fatalf("message changed between calls: %q vs %q", api.Message(err), want)
		}
	}
	if want != "Vui lòng nhập họ tên" {
		t.Errorf("first message = %q, want fullname error", want)
	}

	_, err := s.CreateVehicle("acc-0001", validate.VehicleForm{})
	if api.Message(err) != "Số VIN phải gồm 17 ký tự, không chứa I/O/Q" {
		t.Errorf("vehicle first message = %q, want VIN error", api.Message(err))
	}
}

func TestAuthenticate(t *testing.T) {
	s := NewStore(5 * time.Minute)
	if _, err := s.CreateAccount(testForm("an@example.com")); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Authenticate("an@example.com", "matkhau1"); err != nil {
		t.Fatalf("valid login rejected: %v", err)
	}
	if _, err := s.Authenticate("an@example.com", "sai-mat-khau"); api.StatusOf(err) != http.StatusUnauthorized {
		t.Errorf("wrong password should be 401, got %v", err)
	}
	if _, err := s.Authenticate("nobody@example.com", "matkhau1"); api.StatusOf(err) != http.StatusUnauthorized {
		t.Errorf("unknown email should be 401, got %v", err)
	}
}

func TestVehicleVINUnique(t *testing.T) {
	s := NewStore(5 * time.Minute)
	s.Seed()

	form := validate.VehicleForm{VIN: "1HGBH41JXMN109186", ModelID: "vm-theon", LicensePlate: "51B-99999"}
	_, err := s.CreateVehicle("acc-0002", form)
	if api.StatusOf(err) != http.StatusConflict {
		t.Fatalf("expected 409 for seeded VIN, got %v", err)
	}
	if api.Message(err) != MsgVINTaken {
		t.Errorf("message = %q, want %q", api.Message(err), MsgVINTaken)
	}

	form.VIN = "5YJSA1DN5CFP01657"
	if _, err := s.CreateVehicle("acc-0002", form); err != nil {
		t.Fatalf("fresh VIN rejected: %v", err)
	}
}

func TestVehicleVINImmutable(t *testing.T) {
	s := NewStore(5 * time.Minute)
	s.Seed()

	upd := validate.VehicleForm{VIN: "5YJSA1DN5CFP01657"}
	_, err := s.UpdateVehicle("acc-0001", "veh-0001", upd)
	if api.Message(err) != MsgVINImmutable {
		t.Fatalf("expected VIN immutability error, got %v", err)
	}

	// Same VIN restated is fine, the plate still updates.
	upd = validate.VehicleForm{VIN: "1HGBH41JXMN109186", LicensePlate: "29B-5555"}
	v, err := s.UpdateVehicle("acc-0001", "veh-0001", upd)
	if err != nil {
		t.Fatal(err)
	}
	if v.LicensePlate != "29B-5555" {
		t.Errorf("plate not updated: %+v", v)
	}
}

func TestVehicleOwnershipScoped(t *testing.T) {
	s := NewStore(5 * time.Minute)
	s.Seed()

	// acc-0002 must not see or touch acc-0001's vehicle.
	if _, err := s.UpdateVehicle("acc-0002", "veh-0001", validate.VehicleForm{}); api.StatusOf(err) != http.StatusNotFound {
		t.Errorf("foreign update should be 404, got %v", err)
	}
	if err := s.DeleteVehicle("acc-0002", "veh-0001"); api.StatusOf(err) != http.StatusNotFound {
		t.Errorf("foreign delete should be 404, got %v", err)
	}
	for _, v := range s.VehiclesByAccount("acc-0002") {
		if v.AccountID != "acc-0002" {
			t.Errorf("leaked foreign vehicle %s", v.ID)
		}
	}
}

func TestOTPLifecycle(t *testing.T) {
	s := NewStore(5 * time.Minute)
	ch, err := s.IssueOTP("an@example.com")
	if err != nil {
		t.Fatal(err)
	}

	wrong := "000000"
	if wrong == ch.Code {
		wrong = "000001"
	}
	if err := s.VerifyOTP("an@example.com", wrong); err == nil {
		t.Fatal("wrong code should fail")
	}
	if err := s.VerifyOTP("an@example.com", ch.Code); err != nil {
		t.Fatalf("correct code rejected: %v", err)
	}
	// A consumed code does not verify twice.
	if err := s.VerifyOTP("an@example.com", ch.Code); err == nil {
		t.Fatal("used code should fail")
	}
}

func TestOTPExpiry(t *testing.T) {
	s := NewStore(5 * time.Minute)
	ch, err := s.IssueOTP("an@example.com")
	if err != nil {
		t.Fatal(err)
	}

	s.now = func() time.Time { return time.Now().Add(6 * time.Minute) }
	err = s.VerifyOTP("an@example.com", ch.Code)
	if api.Message(err) != MsgOTPExpired {
		t.Fatalf("expected expiry error, got %v", err)
	}
}

func TestOTPAttemptCap(t *testing.T) {
	s := NewStore(5 * time.Minute)
	ch, err := s.IssueOTP("an@example.com")
	if err != nil {
		t.Fatal(err)
	}

	wrong := "000000"
	if wrong == ch.Code {
		wrong = "000001"
	}
	for i := 0; i < maxOTPAttempts; i++ {
		_ = s.VerifyOTP("an@example.com", wrong)
	}
	err = s.VerifyOTP("an@example.com", ch.Code)
	if api.Message(err) != MsgOTPTooMany {
		t.Fatalf("expected attempt cap, got %v", err)
	}
}

func TestPasswordReset(t *testing.T) {
	s := NewStore(5 * time.Minute)
	if _, err := s.CreateAccount(testForm("an@example.com")); err != nil {
		t.Fatal(err)
	}

	token, err := s.IssueResetToken("an@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ResetPassword(token, "moimatkhau2"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Authenticate("an@example.com", "moimatkhau2"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
	if _, err := s.Authenticate("an@example.com", "matkhau1"); err == nil {
		t.Fatal("old password still works")
	}
	// Token is single use.
	if err := s.ResetPassword(token, "batky123"); err == nil {
		t.Fatal("reset token should be consumed")
	}
}
