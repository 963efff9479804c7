package api

import (
	"errors"
	"net/http"

	"biomine/internal/domain"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	var dataAccess *domain.DataAccessError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &dataAccess):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
