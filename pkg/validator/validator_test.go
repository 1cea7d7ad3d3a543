package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email      string  `json:"email_c" validate:"required,email"`
	BloodGroup string  `json:"blood_group_c" validate:"required,bloodgroup"`
	Status     *string `json:"status_c" validate:"omitempty,patientstatus"`
	Days       string  `json:"available_days_c" validate:"omitempty,weekdays"`
	Date       string  `json:"appointment_date_c" validate:"omitempty,date"`
	Time       string  `json:"appointment_time_c" validate:"omitempty,clock"`
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	v := NewValidator()
	status := "admitted"

	err := v.Validate(&sample{
		Email:      "jane@example.com",
		BloodGroup: "AB-",
		Status:     &status,
		Days:       "Monday, Wednesday,friday",
		Date:       "2024-03-22",
		Time:       "09:30",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrorsUsesStorageNames(t *testing.T) {
	v := NewValidator()
	status := "sleeping"

	err := v.Validate(&sample{
		Email:      "not-an-email",
		BloodGroup: "C+",
		Status:     &status,
		Days:       "Monday,Someday",
		Date:       "22/03/2024",
		Time:       "9.30am",
	})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "email_c must be a valid email address", errs["email_c"])
	assert.Equal(t, "blood_group_c must be one of A+, A-, B+, B-, AB+, AB-, O+, O-", errs["blood_group_c"])
	assert.Equal(t, "status_c is not a known status", errs["status_c"])
	assert.Equal(t, "available_days_c must be a comma-separated list of weekdays", errs["available_days_c"])
	assert.Equal(t, "appointment_date_c must be a date in YYYY-MM-DD format", errs["appointment_date_c"])
	assert.Equal(t, "appointment_time_c must be a time in HH:MM format", errs["appointment_time_c"])
}

func TestRequired(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{})
	require.Error(t, err)
	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "email_c is required", errs["email_c"])
	assert.Equal(t, "blood_group_c is required", errs["blood_group_c"])
	assert.Len(t, errs, 2)
}
