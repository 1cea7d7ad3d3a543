package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-registry/internal/converter"
	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/repository"
	"hospital-registry/internal/usecase"
	"hospital-registry/pkg/response"
	"hospital-registry/pkg/validator"

	"github.com/gorilla/mux"
)

// pathID reads the {id} route variable. Ids that cannot name a record are reported as
// not ok and answered with 404 like any unknown record.
func pathID(r *http.Request) (int, bool) {
	return entity.ParseID(mux.Vars(r)["id"])
}

// decodeAndValidate reads a JSON body into req and validates it. It writes the error
// response itself and reports whether the handler should continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

// writeError maps usecase and store errors onto the response envelope
func writeError(w http.ResponseWriter, err error, notFound, fallback string) {
	var validationErr *repository.ValidationError
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		response.NotFound(w, notFound)
	case errors.As(err, &validationErr):
		response.ValidationError(w, converter.FailuresToResponses(validationErr.Failures))
	case errors.Is(err, repository.ErrTransportUnavailable):
		response.ServiceUnavailable(w, "Record store is unavailable")
	case errors.Is(err, usecase.ErrAppointmentInPast),
		errors.Is(err, usecase.ErrInvalidAppointmentTime),
		errors.Is(err, usecase.ErrAppointmentClosed):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func writeDeleted(w http.ResponseWriter, deleted bool, err error, notFound, fallback, message string) {
	if err != nil {
		writeError(w, err, notFound, fallback)
		return
	}
	if !deleted {
		response.NotFound(w, notFound)
		return
	}
	response.Success(w, http.StatusOK, message, nil)
}

// queryID reads an id filter from the query string. A filter that is present but can
// not name a record matches nothing.
func queryID(r *http.Request, key string) (id int, present bool, valid bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, false
	}
	id, valid = entity.ParseID(raw)
	return id, true, valid
}
