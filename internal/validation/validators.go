package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arnold/hard75-api/internal/calendar"
	"github.com/arnold/hard75-api/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	if err := Validate.RegisterValidation("calendar_date", validateCalendarDate); err != nil {
		panic(fmt.Sprintf("failed to register calendar_date validator: %v", err))
	}
	if err := Validate.RegisterValidation("calories_direction", validateCaloriesDirection); err != nil {
		panic(fmt.Sprintf("failed to register calories_direction validator: %v", err))
	}
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	return calendar.Valid(fl.Field().String())
}

func validateCaloriesDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.CaloriesAbove, models.CaloriesBelow:
		return true
	default:
		return false
	}
}

// Struct validates s and flattens any failures into one readable message.
func Struct(s interface{}) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "calendar_date":
		return field + " must be a YYYY-MM-DD date"
	case "calories_direction":
		return field + " must be 'above' or 'below'"
	case "email":
		return field + " must be a valid email"
	case "timezone":
		return field + " must be an IANA timezone"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "gt", "gte", "lt", "lte", "min", "max":
		return fmt.Sprintf("%s fails %s=%s", field, fe.Tag(), fe.Param())
	default:
		return field + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
