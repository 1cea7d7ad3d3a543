package handler

import (
	"net/http"

	"hospital-registry/internal/converter"
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/usecase"
	"hospital-registry/pkg/response"
	"hospital-registry/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// GetAllPatients lists patients, optionally narrowed by ?search=
func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients := h.patientUsecase.Search(r.Context(), r.URL.Query().Get("search"))

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully",
		converter.PatientsToResponses(patients), &response.Meta{Total: len(patients)})
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Patient not found")
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Patient not found", "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", converter.PatientToResponse(patient))
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), converter.CreatePatientRequestToEntity(&req))
	if err != nil {
		writeError(w, err, "Patient not found", "Failed to create patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", converter.PatientToResponse(patient))
}

// CreatePatients registers a batch. Records the store rejects are skipped and counted
// in meta.failed.
func (h *PatientHandler) CreatePatients(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientBatchRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.patientUsecase.CreateBatch(r.Context(), converter.CreatePatientBatchToEntities(&req))
	if err != nil {
		writeError(w, err, "Patient not found", "Failed to create patients")
		return
	}

	message := "Patients created successfully"
	if result.Partial() {
		message = "Patients partially created"
	}
	response.SuccessWithMeta(w, http.StatusCreated, message,
		converter.PatientsToResponses(result.Records),
		&response.Meta{Total: len(result.Records), Failed: len(result.Failures)})
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Patient not found")
		return
	}

	var req dto.UpdatePatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, converter.UpdatePatientRequestToFields(&req))
	if err != nil {
		writeError(w, err, "Patient not found", "Failed to update patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", converter.PatientToResponse(patient))
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Patient not found")
		return
	}

	deleted, err := h.patientUsecase.Delete(r.Context(), id)
	writeDeleted(w, deleted, err, "Patient not found", "Failed to delete patient", "Patient deleted successfully")
}
