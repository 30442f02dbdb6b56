package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/utils"
	"github.com/MKhiriev/go-pass-bot/models"
)

func (h *Handler) saveCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SaveCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.saveCredential").Msg("invalid JSON was passed")
		writeBadJSON(w)
		return
	}

	if err := h.services.VaultService.Save(r.Context(), userIDFromRequest(r), req.Account, req.Secret); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	credentials, err := h.services.VaultService.List(r.Context(), userIDFromRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, credentials, http.StatusOK)
}

func (h *Handler) credentialExists(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")

	exists, err := h.services.VaultService.Exists(r.Context(), userIDFromRequest(r), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ExistsResponse{Exists: exists}, http.StatusOK)
}

// deleteCredentials removes everything the user stored. Confirmation is the
// caller's job.
func (h *Handler) deleteCredentials(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VaultService.DeleteAll(r.Context(), userIDFromRequest(r)); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// userIDFromRequest returns the id stored by the auth middleware. Handlers
// are only mounted behind it, so a missing id yields zero and is rejected by
// validation.
func userIDFromRequest(r *http.Request) int64 {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}
