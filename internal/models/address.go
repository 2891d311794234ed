package models

import "time"

// AddressRecord is the flat, form-shaped address the user submits.
type AddressRecord struct {
	AddressLine1 string `json:"addressLine1" validate:"notblank"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" validate:"notblank"`
	State        string `json:"state"`
	Postcode     string `json:"postcode" validate:"notblank"`
	Country      string `json:"country" validate:"notblank"`
}

// PlaceComponent is one typed fragment of a geocoded address as returned by the Places widget.
type PlaceComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// HasType reports whether the component carries the given type tag.
func (c PlaceComponent) HasType(t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// Place is the payload the widget delivers on selection.
type Place struct {
	AddressComponents []PlaceComponent `json:"address_components"`
	FormattedAddress  string           `json:"formatted_address,omitempty"`
	Geometry          *Geometry        `json:"geometry,omitempty"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Submission is an address record accepted by the postgres submission target.
type Submission struct {
	ID          string        `json:"id"`
	Address     AddressRecord `json:"address"`
	SubmittedAt time.Time     `json:"submitted_at"`
}
