package converter

import (
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/usecase"
)

func CreateDoctorRequestToEntity(req *dto.CreateDoctorRequest) entity.Doctor {
	return entity.Doctor{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		ContactNumber:  req.ContactNumber,
		Email:          req.Email,
		AvailableDays:  req.AvailableDays,
		AvailableHours: req.AvailableHours,
		Status:         entity.DoctorStatus(req.Status),
		DepartmentID:   entity.NewRef(req.DepartmentID.ID),
	}
}

func UpdateDoctorRequestToFields(req *dto.UpdateDoctorRequest) entity.Fields {
	fields := entity.Fields{}
	putString(fields, entity.DoctorFirstName, req.FirstName)
	putString(fields, entity.DoctorLastName, req.LastName)
	putString(fields, entity.DoctorSpecialization, req.Specialization)
	putString(fields, entity.DoctorContactNumber, req.ContactNumber)
	putString(fields, entity.DoctorEmail, req.Email)
	putString(fields, entity.DoctorAvailableDays, req.AvailableDays)
	putString(fields, entity.DoctorAvailableHours, req.AvailableHours)
	putString(fields, entity.DoctorStatusField, req.Status)
	putRef(fields, entity.DoctorDepartment, req.DepartmentID)
	return fields
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO, resolving the
// department name through refs
func DoctorToResponse(doctor *entity.Doctor, refs *usecase.ReferenceIndex) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		Specialization: doctor.Specialization,
		ContactNumber:  doctor.ContactNumber,
		Email:          doctor.Email,
		AvailableDays:  doctor.AvailableDays,
		AvailableHours: doctor.AvailableHours,
		Status:         string(doctor.Status),
		DepartmentID:   doctor.DepartmentID.ID,
		DepartmentName: refs.DepartmentName(doctor.DepartmentID),
	}
}

func DoctorsToResponses(doctors []entity.Doctor, refs *usecase.ReferenceIndex) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i], refs)
	}
	return responses
}
