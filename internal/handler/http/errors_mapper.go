package http

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pass-bot/internal/generator"
	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/service"
	"github.com/MKhiriev/go-pass-bot/internal/utils"
	"github.com/MKhiriev/go-pass-bot/models"
)

// errorStatuses is checked in order and the first match wins, so a store
// failure wrapping a deadline stays 503.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrDuplicateAccount, http.StatusConflict},
	{service.ErrRateLimited, http.StatusTooManyRequests},
	{service.ErrStoreUnavailable, http.StatusServiceUnavailable},

	{generator.ErrInvalidPolicy, http.StatusBadRequest},
	{generator.ErrInvalidLength, http.StatusBadRequest},
	{generator.ErrInvalidCount, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},
	{ErrInvalidToken, http.StatusUnauthorized},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a
// [models.ErrorResponse] body. Messages of internal failures are replaced by
// the status text so that no store or crypto detail leaks to the caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	kind := service.Classify(err)
	if kind == service.KindInternal && status < http.StatusInternalServerError {
		// transport level rejections such as auth failures
		kind = service.KindCaller
	}

	message := err.Error()
	switch {
	case status == http.StatusServiceUnavailable:
		message = service.ErrStoreUnavailable.Error()
	case status >= http.StatusInternalServerError:
		message = http.StatusText(status)
	}

	var rlErr *service.RateLimitedError
	if errors.As(err, &rlErr) && rlErr.RetryAfter > 0 {
		seconds := int(math.Ceil(rlErr.RetryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Stringer("kind", kind).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Stringer("kind", kind).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message, Kind: kind.String()}, status)
}

func writeBadJSON(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error: "invalid JSON was passed",
		Kind:  service.KindCaller.String(),
	}, http.StatusBadRequest)
}
