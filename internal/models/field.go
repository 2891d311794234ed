package models

import "fmt"

// Field names one of the six form fields. The value is the JSON/form name.
type Field string

const (
	FieldAddressLine1 Field = "addressLine1"
	FieldAddressLine2 Field = "addressLine2"
	FieldCity         Field = "city"
	FieldState        Field = "state"
	FieldPostcode     Field = "postcode"
	FieldCountry      Field = "country"
)

// Fields lists the form fields in display order.
var Fields = []Field{
	FieldAddressLine1,
	FieldAddressLine2,
	FieldCity,
	FieldState,
	FieldPostcode,
	FieldCountry,
}

var labels = map[Field]string{
	FieldAddressLine1: "Address Line 1",
	FieldAddressLine2: "Address Line 2",
	FieldCity:         "City",
	FieldState:        "State/Province",
	FieldPostcode:     "Postcode",
	FieldCountry:      "Country",
}

// ParseField returns the Field for a form name.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := labels[f]; !ok {
		return "", fmt.Errorf("unknown field %q", name)
	}
	return f, nil
}

// Label is the human-readable name shown next to the input.
func (f Field) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// Get returns the value of field f in r.
func (r AddressRecord) Get(f Field) string {
	switch f {
	case FieldAddressLine1:
		return r.AddressLine1
	case FieldAddressLine2:
		return r.AddressLine2
	case FieldCity:
		return r.City
	case FieldState:
		return r.State
	case FieldPostcode:
		return r.Postcode
	case FieldCountry:
		return r.Country
	}
	return ""
}

// With returns a copy of r with field f set to value. Unknown fields leave r unchanged.
func (r AddressRecord) With(f Field, value string) AddressRecord {
	switch f {
	case FieldAddressLine1:
		r.AddressLine1 = value
	case FieldAddressLine2:
		r.AddressLine2 = value
	case FieldCity:
		r.City = value
	case FieldState:
		r.State = value
	case FieldPostcode:
		r.Postcode = value
	case FieldCountry:
		r.Country = value
	}
	return r
}
