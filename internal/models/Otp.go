package models

import "time"

// OTPChallenge is an ephemeral email-verification code. It lives only for
// the duration of a registration flow and is never persisted.
type OTPChallenge struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
	Used      bool      `json:"used"`
}
