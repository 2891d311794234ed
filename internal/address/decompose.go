// Package address turns Places results into form-shaped address records and
// checks those records before submission.
package address

import (
	"strings"

	"address-autocomplete/internal/models"
)

// Place component type tags consumed by Decompose.
const (
	TypeStreetNumber = "street_number"
	TypeRoute        = "route"
	TypeLocality     = "locality"
	TypeAdminArea1   = "administrative_area_level_1"
	TypePostalCode   = "postal_code"
	TypeCountry      = "country"
)

// Decompose maps an ordered list of place components onto an AddressRecord.
//
// Each component is matched against the first applicable rule only. A street
// number is prepended to addressLine1 and a route appended, so "123 Main St"
// comes out right only when the street number arrives before the route;
// components are never reordered. When no street parts are found, fallback
// (usually the formatted address) becomes addressLine1. addressLine2 is left
// for the user.
func Decompose(components []models.PlaceComponent, fallback string) models.AddressRecord {
	var r models.AddressRecord

	for _, c := range components {
		switch {
		case c.HasType(TypeStreetNumber):
			r.AddressLine1 = c.LongName + " " + r.AddressLine1
		case c.HasType(TypeRoute):
			r.AddressLine1 += c.LongName
		case c.HasType(TypeLocality):
			r.City = c.LongName
		case c.HasType(TypeAdminArea1):
			r.State = c.ShortName
		case c.HasType(TypePostalCode):
			r.Postcode = c.LongName
		case c.HasType(TypeCountry):
			r.Country = c.LongName
		}
	}

	if r.AddressLine1 == "" && fallback != "" {
		r.AddressLine1 = fallback
	}
	r.AddressLine1 = strings.TrimSpace(r.AddressLine1)

	return r
}

// DecomposePlace is Decompose applied to a whole widget place.
func DecomposePlace(p models.Place) models.AddressRecord {
	return Decompose(p.AddressComponents, p.FormattedAddress)
}
