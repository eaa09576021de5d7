package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	reLeadRef = regexp.MustCompile(`^LEAD-[0-9A-Z]{8}$`)
	reCIN     = regexp.MustCompile(`^[A-Z0-9]{8,25}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// lead reference = "LEAD-" + 8 chars from the id alphabet
	_ = v.RegisterValidation("leadref", func(fl validator.FieldLevel) bool {
		return reLeadRef.MatchString(fl.Field().String())
	})
	// corporate identification number, uppercase alphanumeric
	_ = v.RegisterValidation("cin", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || reCIN.MatchString(s)
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "leadref":
			out = append(out, FieldError{Field: field, Message: "must look like LEAD-XXXXXXXX"})
		case "cin":
			out = append(out, FieldError{Field: field, Message: "must be an uppercase alphanumeric CIN"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of: " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
