package converter

import (
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/domain/entity"
)

func CreateDepartmentRequestToEntity(req *dto.CreateDepartmentRequest) entity.Department {
	return entity.Department{
		Name:             req.Name,
		Description:      req.Description,
		Location:         req.Location,
		HeadOfDepartment: req.HeadOfDepartment,
		ActivePatients:   req.ActivePatients,
		TotalStaff:       req.TotalStaff,
		ContactExtension: req.ContactExtension,
	}
}

func UpdateDepartmentRequestToFields(req *dto.UpdateDepartmentRequest) entity.Fields {
	fields := entity.Fields{}
	putString(fields, entity.FieldName, req.Name)
	putString(fields, entity.DepartmentDescription, req.Description)
	putString(fields, entity.DepartmentLocation, req.Location)
	putString(fields, entity.DepartmentHead, req.HeadOfDepartment)
	putInt(fields, entity.DepartmentActivePatients, req.ActivePatients)
	putInt(fields, entity.DepartmentTotalStaff, req.TotalStaff)
	putString(fields, entity.DepartmentContactExtension, req.ContactExtension)
	return fields
}

func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	return &dto.DepartmentResponse{
		ID:               department.ID,
		Name:             department.Name,
		Description:      department.Description,
		Location:         department.Location,
		HeadOfDepartment: department.HeadOfDepartment,
		ActivePatients:   department.ActivePatients,
		TotalStaff:       department.TotalStaff,
		ContactExtension: department.ContactExtension,
	}
}

func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *DepartmentToResponse(&departments[i])
	}
	return responses
}
