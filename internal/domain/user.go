package domain

import "time"

type AddressType string

const (
	AddressHome  AddressType = "home"
	AddressWork  AddressType = "work"
	AddressOther AddressType = "other"
)

type Address struct {
	ID        string      `json:"id"`
	Type      AddressType `json:"type"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	Pincode   string      `json:"pincode"`
	IsDefault bool        `json:"isDefault"`
}

// User is the authenticated profile persisted for the session.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar,omitempty"`
	Addresses []Address `json:"addresses"`
	CreatedAt time.Time `json:"createdAt"`
}
