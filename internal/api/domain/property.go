package domain

import "time"

// Property is a bookable listing in the catalogue.
type Property struct {
	ID            string
	HostID        string
	Title         string
	Description   string
	Location      string
	PricePerNight float64
	BedroomCount  int
	BathroomCount int
	MaxGuestCount int
	Rating        int
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
