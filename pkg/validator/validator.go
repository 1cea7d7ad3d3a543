package validator

import (
	"reflect"
	"strings"
	"time"

	"hospital-registry/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their storage name so errors line up with request bodies.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("bloodgroup", func(fl validator.FieldLevel) bool {
		return entity.IsBloodGroup(fl.Field().String())
	})
	v.RegisterValidation("patientstatus", func(fl validator.FieldLevel) bool {
		return entity.PatientStatus(fl.Field().String()).Valid()
	})
	v.RegisterValidation("doctorstatus", func(fl validator.FieldLevel) bool {
		return entity.DoctorStatus(fl.Field().String()).Valid()
	})
	v.RegisterValidation("appointmentstatus", func(fl validator.FieldLevel) bool {
		return entity.AppointmentStatus(fl.Field().String()).Valid()
	})
	v.RegisterValidation("weekdays", func(fl validator.FieldLevel) bool {
		return entity.ValidWeekdays(fl.Field().String())
	})
	v.RegisterValidation("date", layoutValidator(dateLayout))
	v.RegisterValidation("clock", layoutValidator(clockLayout))

	return &CustomValidator{validator: v}
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())
		return err == nil
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "bloodgroup":
				errors[field] = field + " must be one of " + strings.Join(entity.BloodGroups, ", ")
			case "patientstatus", "doctorstatus", "appointmentstatus":
				errors[field] = field + " is not a known status"
			case "weekdays":
				errors[field] = field + " must be a comma-separated list of weekdays"
			case "date":
				errors[field] = field + " must be a date in YYYY-MM-DD format"
			case "clock":
				errors[field] = field + " must be a time in HH:MM format"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
