package dto

import "hospital-registry/internal/domain/entity"

// Request DTOs

// CreateAppointmentRequest leaves the department optional; it is taken from the doctor.
type CreateAppointmentRequest struct {
	PatientID      entity.Ref `json:"patient_id_c" validate:"required"`
	DoctorID       entity.Ref `json:"doctor_id_c" validate:"required"`
	DepartmentID   entity.Ref `json:"department_id_c"`
	Date           string     `json:"appointment_date_c" validate:"required,date"`
	Time           string     `json:"appointment_time_c" validate:"required,clock"`
	ReasonForVisit string     `json:"reason_for_visit_c" validate:"required"`
	Notes          string     `json:"notes_c"`
}

type UpdateAppointmentRequest struct {
	PatientID      *entity.Ref `json:"patient_id_c"`
	DoctorID       *entity.Ref `json:"doctor_id_c"`
	DepartmentID   *entity.Ref `json:"department_id_c"`
	Date           *string     `json:"appointment_date_c" validate:"omitempty,date"`
	Time           *string     `json:"appointment_time_c" validate:"omitempty,clock"`
	ReasonForVisit *string     `json:"reason_for_visit_c"`
	Notes          *string     `json:"notes_c"`
	Status         *string     `json:"status_c" validate:"omitempty,appointmentstatus"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             int    `json:"Id"`
	Name           string `json:"Name"`
	PatientID      int    `json:"patient_id_c"`
	PatientName    string `json:"patient_name"`
	DoctorID       int    `json:"doctor_id_c"`
	DoctorName     string `json:"doctor_name"`
	DepartmentID   int    `json:"department_id_c"`
	DepartmentName string `json:"department_name"`
	Date           string `json:"appointment_date_c"`
	Time           string `json:"appointment_time_c"`
	ReasonForVisit string `json:"reason_for_visit_c"`
	Notes          string `json:"notes_c"`
	Status         string `json:"status_c"`
	CreatedAt      string `json:"created_at_c"`
}
