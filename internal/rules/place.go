package rules

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"eventPlanner/internal/models"
)

var placeValidator = newPlaceValidator()

func newPlaceValidator() *validator.Validate {
	v := validator.New()

	// field paths in violations use the JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
}

// CheckPlace validates the required fields and lengths of p.
func CheckPlace(p models.Place) error {
	err := placeValidator.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &Violation{Kind: ErrInvariant, Field: fe.Field(), Message: fieldMessage(fe)})
	}

	return join(errs)
}

// NewPlace validates p for creation. holder is the place currently using p.Name, if any.
func NewPlace(p models.Place, holder *models.Place, now time.Time) (models.Place, error) {
	var errs []error

	if err := CheckPlace(p); err != nil {
		errs = append(errs, err)
	}
	if holder != nil {
		errs = append(errs, PlaceNameTaken(p.Name))
	}
	if err := join(errs); err != nil {
		return models.Place{}, err
	}

	p.ID = 0
	p.CreatedAt = now
	p.UpdatedAt = nil
	p.DeletedAt = nil

	return p, nil
}

// RevisePlace replaces the address fields of current with those of update.
func RevisePlace(current, update models.Place, holder *models.Place, now time.Time) (models.Place, error) {
	var errs []error

	if err := CheckPlace(update); err != nil {
		errs = append(errs, err)
	}
	if holder != nil && holder.ID != current.ID {
		errs = append(errs, PlaceNameTaken(update.Name))
	}
	if err := join(errs); err != nil {
		return current, err
	}

	revised := current
	revised.Name = update.Name
	revised.StreetNumber = update.StreetNumber
	revised.StreetName = update.StreetName
	revised.City = update.City
	revised.PostalCode = update.PostalCode
	revised.Country = update.Country
	revised.UpdatedAt = &now

	return revised, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This value should not be blank."
	case "min":
		return fmt.Sprintf("This value is too short. It should have %s characters or more.", fe.Param())
	case "max":
		return fmt.Sprintf("This value is too long. It should have %s characters or less.", fe.Param())
	default:
		return "This value is not valid."
	}
}
