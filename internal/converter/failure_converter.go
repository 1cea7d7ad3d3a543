package converter

import (
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/internal/domain/repository"
)

// FailuresToResponses converts store-side batch failures for the response envelope
func FailuresToResponses(failures []repository.RecordFailure) []dto.BatchFailureResponse {
	responses := make([]dto.BatchFailureResponse, len(failures))
	for i, failure := range failures {
		responses[i] = dto.BatchFailureResponse{
			Index:   failure.Index,
			Message: failure.Message,
		}
		if len(failure.Errors) > 0 {
			responses[i].Errors = make(map[string]string, len(failure.Errors))
			for _, fieldErr := range failure.Errors {
				responses[i].Errors[fieldErr.Field] = fieldErr.Message
			}
		}
	}
	return responses
}
