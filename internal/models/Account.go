package models

import "time"

const (
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

const (
	AccountActive  = "active"
	AccountBlocked = "blocked"
)

type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Fullname  string    `json:"fullname"`
	Password  string    `json:"-"` // write-only, never serialized back to the client
	Role      string    `json:"role"` // "driver" or "admin"
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
