package models

import "stayease/src/types"

type User struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	Username       string     `json:"username,omitempty"`
	Email          string     `gorm:"uniqueIndex" json:"email,omitempty"`
	Password       string     `json:"-"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	Role           types.Role `gorm:"default:'GUEST'" json:"role,omitempty"`
	GoogleUID      *string    `json:"-"`

	Bookings []Booking `gorm:"foreignKey:user_id" json:"bookings,omitempty"`
	Places   []Place   `gorm:"foreignKey:host_id" json:"places,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:user_id" json:"reviews,omitempty"`

	types.Timestamps
}
