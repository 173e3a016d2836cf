package models

import "time"

// Pin represents a single named location stored on the map: the person it
// belongs to, the free-text address it was created from, and the coordinates
// the geocoder resolved for it. Latitude and longitude are kept as the
// decimal strings returned by the provider.
type Pin struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Info      string    `json:"info,omitempty"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Latitude  string    `json:"latitude"`
	Longitude string    `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// Suggestion is a candidate address match returned during autocomplete.
// It carries enough address components to pre-fill a form without a second
// lookup.
type Suggestion struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	City        string `json:"city"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}
