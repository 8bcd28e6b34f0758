package validate

import (
	"fmt"
	"reflect"
	"strings"

	pkgerrors "github.com/giftwell/wishlist-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Payload validates an inbound payload struct and reports failures as a
// single validation error whose message names the missing fields.
func Payload(entity string, dest any) error {
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(entity, err)
	}
	return nil
}

func formatValidationErrors(entity string, err error) *pkgerrors.Error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("invalid %s payload", entity))
	}

	details := map[string]string{}
	missing := []string{}
	for _, fieldErr := range errs {
		details[fieldErr.Field()] = validationMessage(fieldErr)
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Field())
		}
	}

	msg := fmt.Sprintf("invalid %s: ", entity)
	if len(missing) > 0 {
		msg += "missing " + strings.Join(missing, ", ")
	} else {
		msg += "bad field values"
	}
	return pkgerrors.New(pkgerrors.CodeValidation, msg).WithDetails(details)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}
