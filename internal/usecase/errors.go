package usecase

import (
	"errors"
	"fmt"

	"hospital-registry/internal/domain/repository"
)

var (
	ErrPatientNotFound       = fmt.Errorf("patient %w", repository.ErrRecordNotFound)
	ErrDoctorNotFound        = fmt.Errorf("doctor %w", repository.ErrRecordNotFound)
	ErrDepartmentNotFound    = fmt.Errorf("department %w", repository.ErrRecordNotFound)
	ErrAppointmentNotFound   = fmt.Errorf("appointment %w", repository.ErrRecordNotFound)
	ErrMedicalRecordNotFound = fmt.Errorf("medical record %w", repository.ErrRecordNotFound)

	ErrAppointmentInPast      = errors.New("appointment date and time must be in the future")
	ErrInvalidAppointmentTime = errors.New("invalid appointment date or time, use YYYY-MM-DD and HH:MM")
	ErrAppointmentClosed      = errors.New("appointment is already completed or cancelled")
)
