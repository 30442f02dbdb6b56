package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/utils"
	"github.com/MKhiriev/go-pass-bot/models"
)

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg("invalid JSON was passed")
		writeBadJSON(w)
		return
	}
	req.UserID = userIDFromRequest(r)

	passwords, err := h.services.GeneratorService.Generate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GenerateResponse{Passwords: passwords}, http.StatusOK)
}

func (h *Handler) policies(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.GeneratorService.Policies(r.Context()), http.StatusOK)
}
