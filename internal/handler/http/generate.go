// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
	"github.com/go-chi/chi/v5"
)

// generate handles POST /api/generate and answers with the full derivation
// result, including the diagnostic fields.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DerivationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if req.Pepper == "" || req.Word == "" {
		writeError(w, app.MsgBodyFieldsRequired, http.StatusBadRequest)
		return
	}

	result, err := h.services.GeneratorService.Generate(ctx, req)
	if err != nil {
		writeServiceError(w, err, app.MsgBodyFieldsRequired)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing derivation result")
	}
}

// generatePassword handles GET /api/generate/{pepper}/{word} and answers
// with the password only.
func (h *Handler) generatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pepper, err := pathParam(r, "pepper")
	if err != nil {
		writeError(w, app.MsgPathSegmentsRequired, http.StatusBadRequest)
		return
	}
	word, err := pathParam(r, "word")
	if err != nil {
		writeError(w, app.MsgPathSegmentsRequired, http.StatusBadRequest)
		return
	}

	if pepper == "" || word == "" {
		writeError(w, app.MsgPathSegmentsRequired, http.StatusBadRequest)
		return
	}

	result, err := h.services.GeneratorService.Generate(ctx, models.DerivationRequest{Pepper: pepper, Word: word})
	if err != nil {
		writeServiceError(w, err, app.MsgPathSegmentsRequired)
		return
	}

	if _, err = utils.WriteJSON(w, models.PasswordResponse{Password: result.Password}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing password")
	}
}

// pathParam returns the URL-decoded value of a route parameter. chi matches
// against the escaped path when the request carries encoded slashes, so the
// value is unescaped only in that case.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}

	return url.PathUnescape(value)
}
