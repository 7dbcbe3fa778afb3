package models

import "stayease/src/types"

type Place struct {
	ID            uint                   `gorm:"primarykey" json:"id"`
	Title         string                 `json:"title,omitempty"`
	Slug          string                 `json:"slug,omitempty"`
	Description   string                 `json:"description,omitempty"`
	Country       string                 `json:"country,omitempty"`
	Location      string                 `json:"location,omitempty"`
	Price         float64                `json:"price"`
	Photos        types.StringList       `gorm:"type:jsonb" json:"photos,omitempty"`
	Availability  types.AvailabilityList `gorm:"type:jsonb" json:"availability,omitempty"`
	PlaceTypes    types.StringList       `gorm:"type:jsonb" json:"place_types,omitempty"`
	TotalGuests   uint                   `json:"total_guests,omitempty"`
	Bedrooms      uint                   `json:"bedrooms,omitempty"`
	Bathrooms     uint                   `json:"bathrooms,omitempty"`
	AverageRating float64                `json:"average_rating"`
	HostID        *uint                  `json:"host_id,omitempty"`

	Host    *User    `gorm:"foreignKey:host_id" json:"host,omitempty"`
	Reviews []Review `gorm:"foreignKey:place_id" json:"reviews,omitempty"`

	types.Timestamps
}
