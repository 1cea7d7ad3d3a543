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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	resolver           usecase.ReferenceResolver
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, resolver usecase.ReferenceResolver, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		resolver:           resolver,
		validator:          validator,
	}
}

// GetAllAppointments lists appointments filtered by ?patient_id=, ?doctor_id= or ?date=
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var appointments []entity.Appointment
	if patientID, present, valid := queryID(r, "patient_id"); present {
		if valid {
			appointments = h.appointmentUsecase.GetByPatient(ctx, patientID)
		}
	} else if doctorID, present, valid := queryID(r, "doctor_id"); present {
		if valid {
			appointments = h.appointmentUsecase.GetByDoctor(ctx, doctorID)
		}
	} else if date := r.URL.Query().Get("date"); date != "" {
		appointments = h.appointmentUsecase.GetByDate(ctx, date)
	} else {
		appointments = h.appointmentUsecase.GetAll(ctx)
	}

	refs := h.resolver.Index(ctx)
	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully",
		converter.AppointmentsToResponses(appointments, refs), &response.Meta{Total: len(appointments)})
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Appointment not found")
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Appointment not found", "Failed to get appointment")
		return
	}

	h.respond(w, r, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), converter.CreateAppointmentRequestToEntity(&req))
	if err != nil {
		writeError(w, err, "Doctor not found", "Failed to create appointment")
		return
	}

	h.respond(w, r, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Appointment not found")
		return
	}

	var req dto.UpdateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, converter.UpdateAppointmentRequestToFields(&req))
	if err != nil {
		writeError(w, err, "Appointment not found", "Failed to update appointment")
		return
	}

	h.respond(w, r, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Appointment not found")
		return
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, err, "Appointment not found", "Failed to cancel appointment")
		return
	}

	h.respond(w, r, http.StatusOK, "Appointment cancelled successfully", appointment)
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Appointment not found")
		return
	}

	appointment, err := h.appointmentUsecase.Complete(r.Context(), id)
	if err != nil {
		writeError(w, err, "Appointment not found", "Failed to complete appointment")
		return
	}

	h.respond(w, r, http.StatusOK, "Appointment completed successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Appointment not found")
		return
	}

	deleted, err := h.appointmentUsecase.Delete(r.Context(), id)
	writeDeleted(w, deleted, err, "Appointment not found", "Failed to delete appointment", "Appointment deleted successfully")
}

func (h *AppointmentHandler) respond(w http.ResponseWriter, r *http.Request, status int, message string, appointment *entity.Appointment) {
	refs := h.resolver.Index(r.Context())
	response.Success(w, status, message, converter.AppointmentToResponse(appointment, refs))
}
