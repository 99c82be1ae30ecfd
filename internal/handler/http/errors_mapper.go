package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-photo-gate/internal/service"
)

var errorStatusMap = map[error]int{
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrParsingForm:                http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
