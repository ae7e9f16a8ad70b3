package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
)

var errorStatusMap = map[error]int{
	crypto.ErrInvalidInput:           http.StatusBadRequest,
	crypto.ErrPrimitiveUnavailable:   http.StatusInternalServerError,
	service.ErrDerivationNotAdmitted: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps a service error to its status and a client-facing
// message. Internal error text never reaches the client.
func writeServiceError(w http.ResponseWriter, err error, invalidInputMessage string) {
	status := statusFromError(err)

	var message string
	switch status {
	case http.StatusBadRequest:
		message = invalidInputMessage
	case http.StatusServiceUnavailable:
		message = app.MsgDerivationNotAdmitted
	default:
		message = app.MsgDerivationFailed
	}

	writeError(w, message, status)
}

func writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
