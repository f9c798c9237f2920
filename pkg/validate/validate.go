package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"cellarbook.org/CellarBook/pkg/model"
)

var ErrValidation = errors.New("validation failed")

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("winetype", oneOf(model.WineTypes()))
	_ = v.RegisterValidation("bottlestatus", oneOf(model.BottleStatuses()))
	_ = v.RegisterValidation("transactiontype", oneOf(model.TransactionTypes()))
	_ = v.RegisterValidation("tastingstage", oneOf(model.TastingStages()))

	return &Validator{validate: v}
}

// Struct checks every tagged field and reports all violations at once,
// wrapped in ErrValidation. Nothing is written to the store when this fails.
func (v *Validator) Struct(subject interface{}) error {
	err := v.validate.Struct(subject)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var errs error
	for _, fieldError := range fieldErrors {
		multierr.AppendInto(&errs, fmt.Errorf("%s: %s constraint violated", fieldError.Namespace(), fieldError.Tag()))
	}

	return fmt.Errorf("%w: %v", ErrValidation, errs)
}

func oneOf[T ~string](values []T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		candidate := fl.Field().String()

		for _, value := range values {
			if candidate == string(value) {
				return true
			}
		}

		return false
	}
}
