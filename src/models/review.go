package models

import "stayease/src/types"

type Review struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   uint   `json:"user_id,omitempty"`
	PlaceID  uint   `json:"place_id,omitempty"`
	Comments string `json:"comments,omitempty"`
	Rating   uint   `json:"rating,omitempty"`

	User  *User  `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Place *Place `gorm:"foreignKey:place_id" json:"-"`

	types.Timestamps
}
