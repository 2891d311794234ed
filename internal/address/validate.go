package address

import (
	"errors"
	"reflect"
	"strings"

	"address-autocomplete/internal/models"

	"github.com/go-playground/validator/v10"
)

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	if err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate returns an error message per failing field. An empty map means the
// record can be submitted. addressLine2 and state are optional.
func Validate(r models.AddressRecord) map[models.Field]string {
	errs := make(map[models.Field]string)

	err := defaultValidator.Struct(r)
	if err == nil {
		return errs
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Only reachable with a programming error in the struct tags.
		panic(err)
	}

	for _, fe := range validationErrs {
		f := models.Field(fe.Field())
		errs[f] = message(f, fe.ActualTag())
	}
	return errs
}

func message(f models.Field, tag string) string {
	switch tag {
	case "notblank", "required":
		return f.Label() + " is required"
	default:
		return f.Label() + " is invalid"
	}
}
