package dto

import "hospital-registry/internal/domain/entity"

type CreateMedicalRecordRequest struct {
	PatientID     entity.Ref `json:"patient_id_c" validate:"required"`
	DoctorID      entity.Ref `json:"doctor_id_c" validate:"required"`
	AppointmentID entity.Ref `json:"appointment_id_c"`
	VisitDate     string     `json:"visit_date_c" validate:"omitempty,date"`
	Diagnosis     string     `json:"diagnosis_c" validate:"required"`
	FollowUpDate  string     `json:"follow_up_date_c" validate:"omitempty,date"`
}

type UpdateMedicalRecordRequest struct {
	PatientID     *entity.Ref `json:"patient_id_c"`
	DoctorID      *entity.Ref `json:"doctor_id_c"`
	AppointmentID *entity.Ref `json:"appointment_id_c"`
	VisitDate     *string     `json:"visit_date_c" validate:"omitempty,date"`
	Diagnosis     *string     `json:"diagnosis_c"`
	FollowUpDate  *string     `json:"follow_up_date_c" validate:"omitempty,date"`
}

type MedicalRecordResponse struct {
	ID            int    `json:"Id"`
	Name          string `json:"Name"`
	PatientID     int    `json:"patient_id_c"`
	PatientName   string `json:"patient_name"`
	DoctorID      int    `json:"doctor_id_c"`
	DoctorName    string `json:"doctor_name"`
	AppointmentID int    `json:"appointment_id_c,omitempty"`
	VisitDate     string `json:"visit_date_c"`
	Diagnosis     string `json:"diagnosis_c"`
	FollowUpDate  string `json:"follow_up_date_c"`
}
