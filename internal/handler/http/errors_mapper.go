package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-coach-notes/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:       http.StatusBadRequest,
	service.ErrNotFound:         http.StatusNotFound,
	service.ErrForbidden:        http.StatusForbidden,
	service.ErrShareNotAllowed:  http.StatusConflict,
	service.ErrDecryption:       http.StatusInternalServerError,
	ErrInvalidJSON:              http.StatusBadRequest,
	ErrInvalidQueryParam:        http.StatusBadRequest,
	ErrNoActorInContext:         http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage hides internal failures from callers.
func errorMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
