package models

import (
	"time"

	"stayease/src/types"
)

type Booking struct {
	ID                uint                `gorm:"primarykey" json:"id"`
	PlaceID           uint                `json:"place_id,omitempty"`
	UserID            uint                `json:"user_id,omitempty"`
	CheckIn           time.Time           `json:"check_in,omitempty"`
	CheckOut          time.Time           `json:"check_out,omitempty"`
	Email             string              `json:"email,omitempty"`
	Price             float64             `json:"price"`
	Guests            uint                `json:"guests,omitempty"`
	Status            types.BookingStatus `gorm:"default:'PENDING'" json:"status,omitempty"`
	CheckoutSessionID *string             `gorm:"uniqueIndex" json:"checkout_session_id,omitempty"`

	Place *Place `gorm:"foreignKey:place_id" json:"place,omitempty"`
	User  *User  `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
