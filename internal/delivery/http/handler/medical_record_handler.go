package handler

import (
	"net/http"

	"hospital-registry/internal/converter"
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/usecase"
	"hospital-registry/pkg/response"
	"hospital-registry/pkg/validator"
)

type MedicalRecordHandler struct {
	medicalRecordUsecase usecase.MedicalRecordUsecase
	resolver             usecase.ReferenceResolver
	validator            *validator.CustomValidator
}

func NewMedicalRecordHandler(medicalRecordUsecase usecase.MedicalRecordUsecase, resolver usecase.ReferenceResolver, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		medicalRecordUsecase: medicalRecordUsecase,
		resolver:             resolver,
		validator:            validator,
	}
}

func (h *MedicalRecordHandler) GetAllMedicalRecords(w http.ResponseWriter, r *http.Request) {
	var records []entity.MedicalRecord
	if patientID, present, valid := queryID(r, "patient_id"); present {
		if valid {
			records = h.medicalRecordUsecase.GetByPatient(r.Context(), patientID)
		}
	} else {
		records = h.medicalRecordUsecase.GetAll(r.Context())
	}

	refs := h.resolver.Index(r.Context())
	response.SuccessWithMeta(w, http.StatusOK, "Medical records retrieved successfully",
		converter.MedicalRecordsToResponses(records, refs), &response.Meta{Total: len(records)})
}

func (h *MedicalRecordHandler) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Medical record not found")
		return
	}

	record, err := h.medicalRecordUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Medical record not found", "Failed to get medical record")
		return
	}

	refs := h.resolver.Index(r.Context())
	response.Success(w, http.StatusOK, "Medical record retrieved successfully", converter.MedicalRecordToResponse(record, refs))
}

func (h *MedicalRecordHandler) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.medicalRecordUsecase.Create(r.Context(), converter.CreateMedicalRecordRequestToEntity(&req))
	if err != nil {
		writeError(w, err, "Medical record not found", "Failed to create medical record")
		return
	}

	refs := h.resolver.Index(r.Context())
	response.Success(w, http.StatusCreated, "Medical record created successfully", converter.MedicalRecordToResponse(record, refs))
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Medical record not found")
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.medicalRecordUsecase.Update(r.Context(), id, converter.UpdateMedicalRecordRequestToFields(&req))
	if err != nil {
		writeError(w, err, "Medical record not found", "Failed to update medical record")
		return
	}

	refs := h.resolver.Index(r.Context())
	response.Success(w, http.StatusOK, "Medical record updated successfully", converter.MedicalRecordToResponse(record, refs))
}

func (h *MedicalRecordHandler) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Medical record not found")
		return
	}

	deleted, err := h.medicalRecordUsecase.Delete(r.Context(), id)
	writeDeleted(w, deleted, err, "Medical record not found", "Failed to delete medical record", "Medical record deleted successfully")
}
