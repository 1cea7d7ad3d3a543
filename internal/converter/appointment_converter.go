package converter

import (
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/usecase"
)

func CreateAppointmentRequestToEntity(req *dto.CreateAppointmentRequest) entity.Appointment {
	return entity.Appointment{
		PatientID:      entity.NewRef(req.PatientID.ID),
		DoctorID:       entity.NewRef(req.DoctorID.ID),
		DepartmentID:   entity.NewRef(req.DepartmentID.ID),
		Date:           req.Date,
		Time:           req.Time,
		ReasonForVisit: req.ReasonForVisit,
		Notes:          req.Notes,
	}
}

func UpdateAppointmentRequestToFields(req *dto.UpdateAppointmentRequest) entity.Fields {
	fields := entity.Fields{}
	putRef(fields, entity.AppointmentPatient, req.PatientID)
	putRef(fields, entity.AppointmentDoctor, req.DoctorID)
	putRef(fields, entity.AppointmentDepartment, req.DepartmentID)
	putString(fields, entity.AppointmentDate, req.Date)
	putString(fields, entity.AppointmentTime, req.Time)
	putString(fields, entity.AppointmentReasonForVisit, req.ReasonForVisit)
	putString(fields, entity.AppointmentNotes, req.Notes)
	putString(fields, entity.AppointmentStatusField, req.Status)
	return fields
}

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO with
// patient, doctor and department names resolved through refs
func AppointmentToResponse(appointment *entity.Appointment, refs *usecase.ReferenceIndex) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:             appointment.ID,
		Name:           appointment.Name,
		PatientID:      appointment.PatientID.ID,
		PatientName:    refs.PatientName(appointment.PatientID),
		DoctorID:       appointment.DoctorID.ID,
		DoctorName:     refs.DoctorName(appointment.DoctorID),
		DepartmentID:   appointment.DepartmentID.ID,
		DepartmentName: refs.DepartmentName(appointment.DepartmentID),
		Date:           appointment.Date,
		Time:           appointment.Time,
		ReasonForVisit: appointment.ReasonForVisit,
		Notes:          appointment.Notes,
		Status:         string(appointment.Status),
		CreatedAt:      appointment.CreatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment, refs *usecase.ReferenceIndex) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i], refs)
	}
	return responses
}
