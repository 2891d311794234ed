package service

import (
	"context"
	"errors"
	"fmt"

	"address-autocomplete/internal/address"
	"address-autocomplete/internal/form"
	"address-autocomplete/internal/models"
)

// ErrInvalidPlace is returned for a selected place that carries neither
// address components nor a formatted address.
var ErrInvalidPlace = errors.New("service: place has no address data")

// Submitter receives validated address records.
type Submitter interface {
	Submit(ctx context.Context, record models.AddressRecord) error
}

// FormService drives per-session address forms
type FormService struct {
	store     *form.Store
	submitter Submitter
}

// NewFormService creates a new form service
func NewFormService(store *form.Store, submitter Submitter) *FormService {
	return &FormService{store: store, submitter: submitter}
}

// View returns the session's current form
func (s *FormService) View(ctx context.Context, session string) (form.View, error) {
	var v form.View
	err := s.store.With(session, func(st *form.State) error {
		v = st.View()
		return nil
	})
	return v, err
}

// SelectPlace decomposes a widget selection and replaces the whole form with it.
// A place with neither components nor a formatted address returns
// ErrInvalidPlace and leaves the form untouched.
func (s *FormService) SelectPlace(ctx context.Context, session string, place models.Place) (form.View, error) {
	if len(place.AddressComponents) == 0 && place.FormattedAddress == "" {
		return form.View{}, ErrInvalidPlace
	}

	record := address.DecomposePlace(place)

	var v form.View
	err := s.store.With(session, func(st *form.State) error {
		st.Replace(record)
		v = st.View()
		return nil
	})
	return v, err
}

// UpdateField applies a manual edit to one field
func (s *FormService) UpdateField(ctx context.Context, session string, field models.Field, value string) (form.View, error) {
	var v form.View
	err := s.store.With(session, func(st *form.State) error {
		if err := st.Update(field, value); err != nil {
			return err
		}
		v = st.View()
		return nil
	})
	if err != nil {
		return form.View{}, fmt.Errorf("service: failed to update field: %w", err)
	}
	return v, nil
}

// TouchField marks a field as visited
func (s *FormService) TouchField(ctx context.Context, session string, field models.Field) (form.View, error) {
	var v form.View
	err := s.store.With(session, func(st *form.State) error {
		if err := st.Touch(field); err != nil {
			return err
		}
		v = st.View()
		return nil
	})
	if err != nil {
		return form.View{}, fmt.Errorf("service: failed to touch field: %w", err)
	}
	return v, nil
}

// Submit validates the session's form and hands it to the submitter. A
// successful submit starts the session over with an empty form.
func (s *FormService) Submit(ctx context.Context, session string) (models.AddressRecord, error) {
	var submitted models.AddressRecord
	err := s.store.With(session, func(st *form.State) error {
		err := st.Submit(ctx, func(ctx context.Context, r models.AddressRecord) error {
			if err := s.submitter.Submit(ctx, r); err != nil {
				return err
			}
			submitted = r
			return nil
		})
		if err != nil {
			return err
		}
		st.Reset()
		return nil
	})
	if err != nil {
		return models.AddressRecord{}, fmt.Errorf("service: failed to submit address: %w", err)
	}
	return submitted, nil
}
