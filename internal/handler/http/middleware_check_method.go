// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-bot/internal/service"
	"github.com/MKhiriev/go-pass-bot/internal/utils"
	"github.com/MKhiriev/go-pass-bot/models"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A path served under a different method is answered with 404 Not Found
// instead of chi's 405, so that probing methods does not reveal which
// routes exist. A request the router can actually match is passed back to
// it unchanged.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteJSON(w, models.ErrorResponse{
			Error: http.StatusText(http.StatusNotFound),
			Kind:  service.KindCaller.String(),
		}, http.StatusNotFound)
	}
}
