// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-gen/internal/app"
)

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler.
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. Responding with 404 instead hides the existence of the
// route from callers that use an unsupported method.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, app.MsgNotFound, http.StatusNotFound)
}
