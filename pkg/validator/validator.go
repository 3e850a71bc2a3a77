package validator

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator"
)

var (
	global      *validator.Validate
	mobileRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

const (
	ErrInvalidFormat      = "Invalid format"
	ErrFieldRequired      = "Field is required"
	ErrFieldExceedsMaxLen = "Field exceeds maximum length"
	ErrFieldBelowMinLen   = "Field is below minimum length"
	ErrFieldExceedsMaxVal = "Field exceeds maximum value"
	ErrFieldBelowMinVal   = "Field is below minimum value"
	ErrUnknownValidation  = "Unknown validation error"
)

func init() {
	SetValidator(New())
}

func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("mobile", validateMobile)
	_ = v.RegisterValidation("passoutyear", validatePassoutYear)
	return v
}

func SetValidator(v *validator.Validate) {
	global = v
}

func Validator() *validator.Validate {
	return global
}

func validateMobile(fl validator.FieldLevel) bool {
	return mobileRegex.MatchString(fl.Field().String())
}

// validatePassoutYear accepts a four-digit year no later than the
// current one.
func validatePassoutYear(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 4 {
		return false
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return year >= 1900 && year <= time.Now().Year()
}

func Validate(ctx context.Context, structure any) error {
	return parseValidationErrors(Validator().StructCtx(ctx, structure))
}

func parseValidationErrors(err error) error {
	if err == nil {
		return nil
	}
	vErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(vErrors) == 0 {
		return nil
	}
	ve := vErrors[0]
	var msg string
	switch ve.Tag() {
	case "required":
		msg = ErrFieldRequired
	case "email":
		msg = ErrInvalidFormat
	case "max":
		msg = ErrFieldExceedsMaxLen
	case "min":
		msg = ErrFieldBelowMinLen
	case "lt", "lte":
		msg = ErrFieldExceedsMaxVal
	case "gt", "gte":
		msg = ErrFieldBelowMinVal
	case "mobile":
		msg = "Mobile number must contain 7 to 15 digits"
	case "passoutyear":
		msg = "Passout year must be a four-digit year in the past"
	default:
		msg = ErrUnknownValidation
	}
	return errors.New(msg + ": " + ve.Namespace())
}
