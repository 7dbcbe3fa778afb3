package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Role string

const (
	ROLE_ADMIN Role = "ADMIN"
	ROLE_HOST  Role = "HOST"
	ROLE_GUEST Role = "GUEST"
)

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "PENDING"
	BOOKING_CONFIRMED BookingStatus = "CONFIRMED"
	BOOKING_CANCELLED BookingStatus = "CANCELLED"
)

// NormalizeBookingStatus folds the single-L variant that older clients still
// send into the canonical spelling.
func NormalizeBookingStatus(s string) BookingStatus {
	if s == "CANCELED" {
		return BOOKING_CANCELLED
	}
	return BookingStatus(s)
}

type PaymentStatus string

const (
	PAYMENT_PENDING   PaymentStatus = "pending"
	PAYMENT_COMPLETED PaymentStatus = "completed"
	PAYMENT_FAILED    PaymentStatus = "failed"
)

// PlaceCategories is the fixed set a Place may be tagged with.
var PlaceCategories = []string{
	"beachfront",
	"cabins",
	"trending",
	"countryside",
	"amazing_pools",
	"rooms",
	"camping",
	"lakefront",
}

type StringList []string

func (a StringList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *StringList) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type AvailabilityWindow struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type AvailabilityList []AvailabilityWindow

func (a AvailabilityList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *AvailabilityList) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type SignupRequestBody struct {
	Username string `json:"username" binding:"required,min=6,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type SigninRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequestBody carries the client-attested Google identity. The
// server trusts uid/email as sent; there is no round trip to the provider.
type GoogleAuthRequestBody struct {
	UID            string `json:"uid" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Username       string `json:"username" binding:"required"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type UpdateUserRequestBody struct {
	Username       *string `json:"username,omitempty" binding:"omitempty,min=6,max=20"`
	Password       *string `json:"password,omitempty" binding:"omitempty,min=8"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

type CreatePlaceRequestBody struct {
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description,omitempty"`
	Country      string             `json:"country" binding:"required"`
	Location     string             `json:"location" binding:"required"`
	Price        float64            `json:"price" binding:"required,gt=0"`
	Photos       []string           `json:"photos" binding:"required,min=1"`
	Availability AvailabilityList   `json:"availability,omitempty"`
	PlaceTypes   []string           `json:"place_types,omitempty" binding:"omitempty,dive,placecategory"`
	TotalGuests  uint               `json:"total_guests,omitempty"`
	Bedrooms     uint               `json:"bedrooms,omitempty"`
	Bathrooms    uint               `json:"bathrooms,omitempty"`
	Host         *uint              `json:"host,omitempty"`
}

type UpdatePlaceRequestBody struct {
	Title        *string           `json:"title,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Country      *string           `json:"country,omitempty"`
	Location     *string           `json:"location,omitempty"`
	Price        *float64          `json:"price,omitempty" binding:"omitempty,gt=0"`
	Photos       []string          `json:"photos,omitempty" binding:"omitempty,min=1"`
	Availability *AvailabilityList `json:"availability,omitempty"`
	PlaceTypes   []string          `json:"place_types,omitempty" binding:"omitempty,dive,placecategory"`
	TotalGuests  *uint             `json:"total_guests,omitempty"`
	Bedrooms     *uint             `json:"bedrooms,omitempty"`
	Bathrooms    *uint             `json:"bathrooms,omitempty"`
}

type ListPlacesQuery struct {
	Page          int    `form:"page,default=1" binding:"omitempty,gte=1"`
	Limit         int    `form:"limit,default=8" binding:"omitempty,gte=1,lte=100"`
	SortBy        string `form:"sortBy,default=price_desc"`
	FilterCountry string `form:"filterCountry"`
	SearchTitle   string `form:"searchTitle"`
}

type CreateBookingIntentRequestBody struct {
	PlaceID     uint    `json:"place_id" binding:"required"`
	UserID      uint    `json:"user_id" binding:"required"`
	CheckIn     string  `json:"check_in" binding:"required,bookabledate"`
	CheckOut    string  `json:"check_out" binding:"required,gtdate=CheckIn"`
	TotalGuests uint    `json:"total_guests" binding:"required,gte=1"`
	Total       float64 `json:"total" binding:"required,gt=0"`
}

type ConfirmBookingRequestBody struct {
	SessionID string `json:"session_id" binding:"required"`
}

type UpdateBookingStatusRequestBody struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED CANCELED"`
}

type AddReviewRequestBody struct {
	PlaceID  uint   `json:"place_id" binding:"required"`
	Comments string `json:"comments" binding:"required"`
	Rating   uint   `json:"rating" binding:"required,gte=1,lte=5"`
}

type UpdateReviewRequestBody struct {
	Comments *string `json:"comments,omitempty"`
	Rating   *uint   `json:"rating,omitempty" binding:"omitempty,gte=1,lte=5"`
}
