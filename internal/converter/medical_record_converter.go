package converter

import (
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/usecase"
)

func CreateMedicalRecordRequestToEntity(req *dto.CreateMedicalRecordRequest) entity.MedicalRecord {
	return entity.MedicalRecord{
		PatientID:     entity.NewRef(req.PatientID.ID),
		DoctorID:      entity.NewRef(req.DoctorID.ID),
		AppointmentID: entity.NewRef(req.AppointmentID.ID),
		VisitDate:     req.VisitDate,
		Diagnosis:     req.Diagnosis,
		FollowUpDate:  req.FollowUpDate,
	}
}

func UpdateMedicalRecordRequestToFields(req *dto.UpdateMedicalRecordRequest) entity.Fields {
	fields := entity.Fields{}
	putRef(fields, entity.MedicalRecordPatient, req.PatientID)
	putRef(fields, entity.MedicalRecordDoctor, req.DoctorID)
	putRef(fields, entity.MedicalRecordAppointment, req.AppointmentID)
	putString(fields, entity.MedicalRecordVisitDate, req.VisitDate)
	putString(fields, entity.MedicalRecordDiagnosis, req.Diagnosis)
	putString(fields, entity.MedicalRecordFollowUpDate, req.FollowUpDate)
	return fields
}

func MedicalRecordToResponse(record *entity.MedicalRecord, refs *usecase.ReferenceIndex) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:            record.ID,
		Name:          record.Name,
		PatientID:     record.PatientID.ID,
		PatientName:   refs.PatientName(record.PatientID),
		DoctorID:      record.DoctorID.ID,
		DoctorName:    refs.DoctorName(record.DoctorID),
		AppointmentID: record.AppointmentID.ID,
		VisitDate:     record.VisitDate,
		Diagnosis:     record.Diagnosis,
		FollowUpDate:  record.FollowUpDate,
	}
}

func MedicalRecordsToResponses(records []entity.MedicalRecord, refs *usecase.ReferenceIndex) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i], refs)
	}
	return responses
}
