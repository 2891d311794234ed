// Package form holds the state of one address form: the current values, which
// fields the user has touched, and the validation errors for those values.
package form

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"address-autocomplete/internal/address"
	"address-autocomplete/internal/models"
)

// ErrUnknownField is returned when an update names a field the form does not have.
var ErrUnknownField = errors.New("form: unknown field")

// ValidationError blocks a submit. Errors maps each failing field to its message.
type ValidationError struct {
	Errors map[models.Field]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	return "form: invalid fields: " + strings.Join(fields, ", ")
}

// CompleteFunc receives the record of a successful submit.
type CompleteFunc func(ctx context.Context, record models.AddressRecord) error

// View is a snapshot of a State suitable for rendering.
type View struct {
	Values        models.AddressRecord    `json:"values"`
	Touched       map[models.Field]bool   `json:"touched"`
	Errors        map[models.Field]string `json:"errors"`
	VisibleErrors map[models.Field]string `json:"visible_errors"`
}

// State is not safe for concurrent use; Store serialises access per session.
type State struct {
	values  models.AddressRecord
	touched map[models.Field]bool
	errors  map[models.Field]string
}

// NewState returns an empty form. Required fields already carry errors, they
// are just not visible until touched.
func NewState() *State {
	s := &State{touched: make(map[models.Field]bool)}
	s.revalidate()
	return s
}

func (s *State) Values() models.AddressRecord { return s.values }

func (s *State) Touched(f models.Field) bool { return s.touched[f] }

// Errors returns a copy of the current error mapping.
func (s *State) Errors() map[models.Field]string {
	out := make(map[models.Field]string, len(s.errors))
	for f, msg := range s.errors {
		out[f] = msg
	}
	return out
}

// Update sets one field and marks it touched.
func (s *State) Update(f models.Field, value string) error {
	if _, err := models.ParseField(string(f)); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	s.values = s.values.With(f, value)
	s.touched[f] = true
	s.revalidate()
	return nil
}

// Touch marks a field touched without changing it, as on blur.
func (s *State) Touch(f models.Field) error {
	if _, err := models.ParseField(string(f)); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	s.touched[f] = true
	return nil
}

// Replace overwrites every field at once. Touched flags are left as they are.
func (s *State) Replace(r models.AddressRecord) {
	s.values = r
	s.revalidate()
}

// Submit validates the current values. On failure every field is marked
// touched so all errors show, and a *ValidationError is returned. Otherwise
// complete is called with the record and its error returned.
func (s *State) Submit(ctx context.Context, complete CompleteFunc) error {
	s.revalidate()
	if len(s.errors) > 0 {
		for _, f := range models.Fields {
			s.touched[f] = true
		}
		return &ValidationError{Errors: s.Errors()}
	}
	return complete(ctx, s.values)
}

// Reset empties the form and forgets which fields were touched.
func (s *State) Reset() {
	s.values = models.AddressRecord{}
	s.touched = make(map[models.Field]bool)
	s.revalidate()
}

func (s *State) View() View {
	v := View{
		Values:        s.values,
		Touched:       make(map[models.Field]bool, len(s.touched)),
		Errors:        s.Errors(),
		VisibleErrors: make(map[models.Field]string),
	}
	for f, t := range s.touched {
		v.Touched[f] = t
	}
	for f, msg := range s.errors {
		if s.touched[f] {
			v.VisibleErrors[f] = msg
		}
	}
	return v
}

func (s *State) revalidate() {
	s.errors = address.Validate(s.values)
}
