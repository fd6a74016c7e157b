package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"artist-mgmt/pkg/apierror"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the validator tags on a request DTO and converts
// the first failure into a Validation-kind error. Validation fails fast;
// no partial application happens.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return apierror.Validation("invalid request payload")
	}

	first := errs[0]
	field := strings.ToLower(first.Field())
	switch first.Tag() {
	case "required":
		return apierror.Validation(fmt.Sprintf("%s cannot be empty", field))
	case "email":
		return apierror.Validation("invalid email format")
	case "len", "numeric":
		if field == "phone" {
			return apierror.Validation("phone number must be 10 digits")
		}
		return apierror.Validation(fmt.Sprintf("invalid value for %s", field))
	case "min":
		return apierror.Validation(fmt.Sprintf("%s must be at least %s characters", field, first.Param()))
	case "oneof":
		return apierror.Validation(fmt.Sprintf("invalid value for %s", field))
	case "datetime":
		return apierror.Validation(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	case "gt":
		return apierror.Validation(fmt.Sprintf("%s must be greater than %s", field, first.Param()))
	case "gte":
		return apierror.Validation(fmt.Sprintf("%s must be at least %s", field, first.Param()))
	default:
		return apierror.Validation(fmt.Sprintf("invalid value for %s", field))
	}
}

func validateID(id int64) error {
	if id <= 0 {
		return apierror.Validation("invalid id")
	}
	return nil
}

// validatePage checks the effective pagination values after the handler
// has substituted defaults.
func validatePage(pageNo, pageSize int) error {
	if pageNo < 0 || pageSize <= 0 {
		return apierror.Validation("pageNo must be >= 0 and pageSize must be > 0")
	}
	return nil
}
