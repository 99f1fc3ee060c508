package models

import "time"

type Place struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name" validate:"notblank,max=175"`
	StreetNumber *string    `json:"street_number" validate:"omitempty,max=255"`
	StreetName   string     `json:"street_name" validate:"notblank,max=255"`
	City         string     `json:"city" validate:"notblank,max=255"`
	PostalCode   string     `json:"postal_code" validate:"notblank,min=3,max=16"`
	Country      string     `json:"country" validate:"notblank,max=255"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// PlaceFilter matches text fields partially, case-insensitive.
type PlaceFilter struct {
	ID           *int64
	Name         string
	StreetNumber string
	StreetName   string
	City         string
	PostalCode   string
	Country      string
}
