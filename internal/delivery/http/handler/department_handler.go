package handler

import (
	"net/http"

	"hospital-registry/internal/converter"
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/usecase"
	"hospital-registry/pkg/response"
	"hospital-registry/pkg/validator"
)

type DepartmentHandler struct {
	departmentUsecase usecase.DepartmentUsecase
	validator         *validator.CustomValidator
}

func NewDepartmentHandler(departmentUsecase usecase.DepartmentUsecase, validator *validator.CustomValidator) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUsecase: departmentUsecase,
		validator:         validator,
	}
}

func (h *DepartmentHandler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	departments := h.departmentUsecase.Search(r.Context(), r.URL.Query().Get("search"))

	response.SuccessWithMeta(w, http.StatusOK, "Departments retrieved successfully",
		converter.DepartmentsToResponses(departments), &response.Meta{Total: len(departments)})
}

func (h *DepartmentHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Department not found")
		return
	}

	department, err := h.departmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Department not found", "Failed to get department")
		return
	}

	response.Success(w, http.StatusOK, "Department retrieved successfully", converter.DepartmentToResponse(department))
}

func (h *DepartmentHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	department, err := h.departmentUsecase.Create(r.Context(), converter.CreateDepartmentRequestToEntity(&req))
	if err != nil {
		writeError(w, err, "Department not found", "Failed to create department")
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", converter.DepartmentToResponse(department))
}

func (h *DepartmentHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Department not found")
		return
	}

	var req dto.UpdateDepartmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	department, err := h.departmentUsecase.Update(r.Context(), id, converter.UpdateDepartmentRequestToFields(&req))
	if err != nil {
		writeError(w, err, "Department not found", "Failed to update department")
		return
	}

	response.Success(w, http.StatusOK, "Department updated successfully", converter.DepartmentToResponse(department))
}

func (h *DepartmentHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Department not found")
		return
	}

	deleted, err := h.departmentUsecase.Delete(r.Context(), id)
	writeDeleted(w, deleted, err, "Department not found", "Failed to delete department", "Department deleted successfully")
}
