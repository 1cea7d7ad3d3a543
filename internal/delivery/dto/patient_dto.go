package dto

// Request DTOs

type CreatePatientRequest struct {
	FirstName        string `json:"first_name_c" validate:"required"`
	LastName         string `json:"last_name_c" validate:"required"`
	DateOfBirth      string `json:"date_of_birth_c" validate:"required,date"`
	ContactNumber    string `json:"contact_number_c" validate:"required"`
	Email            string `json:"email_c" validate:"required,email"`
	Address          string `json:"address_c" validate:"required"`
	BloodGroup       string `json:"blood_group_c" validate:"required,bloodgroup"`
	Allergies        string `json:"allergies_c"`
	MedicalHistory   string `json:"medical_history_c"`
	EmergencyContact string `json:"emergency_contact_c" validate:"required"`
	Status           string `json:"status_c" validate:"omitempty,patientstatus"`
}

type CreatePatientBatchRequest struct {
	Records []CreatePatientRequest `json:"records" validate:"required,min=1,dive"`
}

// UpdatePatientRequest carries a partial update. Nil fields are left untouched.
type UpdatePatientRequest struct {
	FirstName        *string `json:"first_name_c" validate:"omitempty,min=1"`
	LastName         *string `json:"last_name_c" validate:"omitempty,min=1"`
	DateOfBirth      *string `json:"date_of_birth_c" validate:"omitempty,date"`
	ContactNumber    *string `json:"contact_number_c"`
	Email            *string `json:"email_c" validate:"omitempty,email"`
	Address          *string `json:"address_c"`
	BloodGroup       *string `json:"blood_group_c" validate:"omitempty,bloodgroup"`
	Allergies        *string `json:"allergies_c"`
	MedicalHistory   *string `json:"medical_history_c"`
	EmergencyContact *string `json:"emergency_contact_c"`
	Status           *string `json:"status_c" validate:"omitempty,patientstatus"`
}

// Response DTOs

type PatientResponse struct {
	ID               int    `json:"Id"`
	Name             string `json:"Name"`
	FirstName        string `json:"first_name_c"`
	LastName         string `json:"last_name_c"`
	DateOfBirth      string `json:"date_of_birth_c"`
	ContactNumber    string `json:"contact_number_c"`
	Email            string `json:"email_c"`
	Address          string `json:"address_c"`
	BloodGroup       string `json:"blood_group_c"`
	Allergies        string `json:"allergies_c"`
	MedicalHistory   string `json:"medical_history_c"`
	EmergencyContact string `json:"emergency_contact_c"`
	Status           string `json:"status_c"`
	RegistrationDate string `json:"registration_date_c"`
}
