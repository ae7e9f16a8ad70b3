package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
)

func (h *Handler) getServiceInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info := models.ServiceInfo{
		Name:    h.services.AppInfoService.GetAppName(ctx),
		Version: h.services.AppInfoService.GetAppVersion(ctx),
	}

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing service info")
	}
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
