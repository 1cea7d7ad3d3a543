package converter

import (
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/domain/entity"
)

// CreatePatientRequestToEntity converts a create request to a Patient entity
func CreatePatientRequestToEntity(req *dto.CreatePatientRequest) entity.Patient {
	return entity.Patient{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      req.DateOfBirth,
		ContactNumber:    req.ContactNumber,
		Email:            req.Email,
		Address:          req.Address,
		BloodGroup:       req.BloodGroup,
		Allergies:        req.Allergies,
		MedicalHistory:   req.MedicalHistory,
		EmergencyContact: req.EmergencyContact,
		Status:           entity.PatientStatus(req.Status),
	}
}

func CreatePatientBatchToEntities(req *dto.CreatePatientBatchRequest) []entity.Patient {
	patients := make([]entity.Patient, len(req.Records))
	for i := range req.Records {
		patients[i] = CreatePatientRequestToEntity(&req.Records[i])
	}
	return patients
}

// UpdatePatientRequestToFields collects the supplied fields of a partial update
func UpdatePatientRequestToFields(req *dto.UpdatePatientRequest) entity.Fields {
	fields := entity.Fields{}
	putString(fields, entity.PatientFirstName, req.FirstName)
	putString(fields, entity.PatientLastName, req.LastName)
	putString(fields, entity.PatientDateOfBirth, req.DateOfBirth)
	putString(fields, entity.PatientContactNumber, req.ContactNumber)
	putString(fields, entity.PatientEmail, req.Email)
	putString(fields, entity.PatientAddress, req.Address)
	putString(fields, entity.PatientBloodGroup, req.BloodGroup)
	putString(fields, entity.PatientAllergies, req.Allergies)
	putString(fields, entity.PatientMedicalHistory, req.MedicalHistory)
	putString(fields, entity.PatientEmergencyContact, req.EmergencyContact)
	putString(fields, entity.PatientStatusField, req.Status)
	return fields
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		Name:             patient.Name,
		FirstName:        patient.FirstName,
		LastName:         patient.LastName,
		DateOfBirth:      patient.DateOfBirth,
		ContactNumber:    patient.ContactNumber,
		Email:            patient.Email,
		Address:          patient.Address,
		BloodGroup:       patient.BloodGroup,
		Allergies:        patient.Allergies,
		MedicalHistory:   patient.MedicalHistory,
		EmergencyContact: patient.EmergencyContact,
		Status:           string(patient.Status),
		RegistrationDate: patient.RegistrationDate,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
