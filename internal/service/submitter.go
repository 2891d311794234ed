package service

import (
	"context"

	"address-autocomplete/internal/models"

	"github.com/rs/zerolog/log"
)

// LogSubmitter writes each submitted address to the log and keeps nothing.
type LogSubmitter struct{}

func NewLogSubmitter() *LogSubmitter {
	return &LogSubmitter{}
}

func (LogSubmitter) Submit(ctx context.Context, r models.AddressRecord) error {
	log.Ctx(ctx).Info().
		Str("address_line1", r.AddressLine1).
		Str("address_line2", r.AddressLine2).
		Str("city", r.City).
		Str("state", r.State).
		Str("postcode", r.Postcode).
		Str("country", r.Country).
		Msg("address submitted")
	return nil
}
