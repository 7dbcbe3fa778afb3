package models

import (
	"stayease/src/types"

	"github.com/google/uuid"
)

type Payment struct {
	ID uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`

	UserID    uint                `json:"user_id,omitempty"`
	BookingID uint                `json:"booking_id,omitempty"`
	Amount    float64             `json:"amount"`
	Status    types.PaymentStatus `gorm:"default:'pending'" json:"status,omitempty"`
	Method    string              `json:"method,omitempty"`

	// No foreign key constraint on purpose: a hard-deleted Booking leaves its
	// Payment row behind, still retrievable by id.
	User *User `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
