package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/league-fixtures-service/internal/http/middleware"
	"github.com/preston-bernstein/league-fixtures-service/internal/leagueapi"
	"github.com/preston-bernstein/league-fixtures-service/internal/logging"
	"github.com/preston-bernstein/league-fixtures-service/internal/matchform"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeWorkflowError maps controller and league API failures onto HTTP statuses.
func writeWorkflowError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	writeError(w, r, statusFor(err), matchform.MessageFor(err), logger)
}

// writeUpstreamError reports a failed read from the league API. A 401 still
// asks the user to sign in again.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, fallback string, logger *slog.Logger) {
	msg := fallback
	if leagueapi.IsUnauthorized(err) {
		msg = matchform.MsgSessionExpired
	}
	writeError(w, r, statusFor(err), msg, logger)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, matchform.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, matchform.ErrAlreadyScheduled), errors.Is(err, matchform.ErrSubmitInProgress):
		return http.StatusConflict
	case errors.Is(err, matchform.ErrClosed):
		return http.StatusGone
	case leagueapi.IsUnauthorized(err):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
