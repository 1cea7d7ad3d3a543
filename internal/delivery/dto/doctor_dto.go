package dto

import "hospital-registry/internal/domain/entity"

// Request DTOs

type CreateDoctorRequest struct {
	FirstName      string     `json:"first_name_c" validate:"required"`
	LastName       string     `json:"last_name_c" validate:"required"`
	Specialization string     `json:"specialization_c" validate:"required"`
	ContactNumber  string     `json:"contact_number_c"`
	Email          string     `json:"email_c" validate:"omitempty,email"`
	AvailableDays  string     `json:"available_days_c" validate:"omitempty,weekdays"`
	AvailableHours string     `json:"available_hours_c"`
	Status         string     `json:"status_c" validate:"omitempty,doctorstatus"`
	DepartmentID   entity.Ref `json:"department_id_c" validate:"required"`
}

type UpdateDoctorRequest struct {
	FirstName      *string     `json:"first_name_c" validate:"omitempty,min=1"`
	LastName       *string     `json:"last_name_c" validate:"omitempty,min=1"`
	Specialization *string     `json:"specialization_c"`
	ContactNumber  *string     `json:"contact_number_c"`
	Email          *string     `json:"email_c" validate:"omitempty,email"`
	AvailableDays  *string     `json:"available_days_c" validate:"omitempty,weekdays"`
	AvailableHours *string     `json:"available_hours_c"`
	Status         *string     `json:"status_c" validate:"omitempty,doctorstatus"`
	DepartmentID   *entity.Ref `json:"department_id_c"`
}

// Response DTOs

type DoctorResponse struct {
	ID             int    `json:"Id"`
	Name           string `json:"Name"`
	FirstName      string `json:"first_name_c"`
	LastName       string `json:"last_name_c"`
	Specialization string `json:"specialization_c"`
	ContactNumber  string `json:"contact_number_c"`
	Email          string `json:"email_c"`
	AvailableDays  string `json:"available_days_c"`
	AvailableHours string `json:"available_hours_c"`
	Status         string `json:"status_c"`
	DepartmentID   int    `json:"department_id_c"`
	DepartmentName string `json:"department_name"`
}
