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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	resolver      usecase.ReferenceResolver
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, resolver usecase.ReferenceResolver, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		resolver:      resolver,
		validator:     validator,
	}
}

// GetAllDoctors lists doctors filtered by ?department_id= or ?search=
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	var doctors []entity.Doctor
	if departmentID, present, valid := queryID(r, "department_id"); present {
		if valid {
			doctors = h.doctorUsecase.GetByDepartment(r.Context(), departmentID)
		}
	} else {
		doctors = h.doctorUsecase.Search(r.Context(), r.URL.Query().Get("search"))
	}

	refs := h.resolver.Index(r.Context())
	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully",
		converter.DoctorsToResponses(doctors, refs), &response.Meta{Total: len(doctors)})
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Doctor not found")
		return
	}

	doctor, err := h.doctorUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Doctor not found", "Failed to get doctor")
		return
	}

	refs := h.resolver.Index(r.Context())
	response.Success(w, http.StatusOK, "Doctor retrieved successfully", converter.DoctorToResponse(doctor, refs))
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.doctorUsecase.Create(r.Context(), converter.CreateDoctorRequestToEntity(&req))
	if err != nil {
		writeError(w, err, "Doctor not found", "Failed to create doctor")
		return
	}

	refs := h.resolver.Index(r.Context())
	response.Success(w, http.StatusCreated, "Doctor created successfully", converter.DoctorToResponse(doctor, refs))
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Doctor not found")
		return
	}

	var req dto.UpdateDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), id, converter.UpdateDoctorRequestToFields(&req))
	if err != nil {
		writeError(w, err, "Doctor not found", "Failed to update doctor")
		return
	}

	refs := h.resolver.Index(r.Context())
	response.Success(w, http.StatusOK, "Doctor updated successfully", converter.DoctorToResponse(doctor, refs))
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Doctor not found")
		return
	}

	deleted, err := h.doctorUsecase.Delete(r.Context(), id)
	writeDeleted(w, deleted, err, "Doctor not found", "Failed to delete doctor", "Doctor deleted successfully")
}
