package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/http/requestutil"
	"github.com/preston-bernstein/league-fixtures-service/internal/leagueapi"
	"github.com/preston-bernstein/league-fixtures-service/internal/logging"
	"github.com/preston-bernstein/league-fixtures-service/internal/matchform"
	"github.com/preston-bernstein/league-fixtures-service/internal/metrics"
	"github.com/preston-bernstein/league-fixtures-service/internal/refdata"
	"github.com/preston-bernstein/league-fixtures-service/internal/store"
)

const maxBodyBytes = 64 << 10

// LeagueClient is what the form endpoints need from the league API.
type LeagueClient interface {
	matchform.AuthenticatedClient
	GetMatch(ctx context.Context, id int64) (fixtures.Fixture, error)
}

// Handler serves the fixture form sessions.
type Handler struct {
	client   LeagueClient
	refs     refdata.Source
	forms    *store.MemoryStore
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewHandler constructs a Handler.
func NewHandler(client LeagueClient, refs refdata.Source, forms *store.MemoryStore, logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	return &Handler{
		client:   client,
		refs:     refs,
		forms:    forms,
		logger:   logger,
		recorder: recorder,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// CreateForm mounts a new form. Reference data is loaded up front, and an
// existing fixture is loaded when a match id is given.
func (h *Handler) CreateForm(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req createFormRequest
	if err := decodeBody(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if raw := r.URL.Query().Get("match_id"); raw != "" {
		id, err := parseMatchID(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
			return
		}
		req.MatchID = id
	}

	mode := fixtures.ModeSchedule
	if req.Mode != "" {
		parsed, ok := fixtures.ParseMode(req.Mode)
		if !ok {
			writeError(w, r, nethttp.StatusBadRequest, "mode must be schedule or score", h.logger)
			return
		}
		mode = parsed
	}

	ctx := h.upstreamContext(r)
	logger := loggerFromContext(r, h.logger)

	catalog, err := refdata.Load(ctx, h.refs)
	if err != nil {
		logging.Error(logger, "reference data load failed", err)
		writeUpstreamError(w, r, err, "reference data unavailable", h.logger)
		return
	}

	draft := fixtures.EmptyDraft(mode)
	if req.MatchID != 0 {
		existing, err := h.client.GetMatch(ctx, req.MatchID)
		if err != nil {
			logging.Warn(logger, "fixture load failed", logging.FieldMatchID, req.MatchID, "error", err)
			var apiErr *leagueapi.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == nethttp.StatusNotFound {
				writeError(w, r, nethttp.StatusNotFound, "fixture not found", h.logger)
				return
			}
			writeUpstreamError(w, r, err, "fixture unavailable", h.logger)
			return
		}
		draft = fixtures.DraftFromFixture(existing)
		if req.Mode != "" {
			draft = fixtures.ApplyModeChange(draft, mode)
		}
	}

	ctrl := matchform.NewController(matchform.Config{
		Client:   h.client,
		Lookup:   catalog,
		Draft:    draft,
		Logger:   h.logger,
		Recorder: h.recorder,
	})
	sess := h.forms.Create(ctrl, catalog)
	logging.Info(logger, "fixture form mounted", logging.FieldFormID, sess.ID, logging.FieldMode, draft.Mode())

	writeJSON(w, nethttp.StatusCreated, h.render(sess, true), h.logger)
}

// GetForm returns a form's current state.
func (h *Handler) GetForm(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.render(sess, r.URL.Query().Get("reference") == "true"), h.logger)
}

// PatchDraft applies user edits to a form's draft.
func (h *Handler) PatchDraft(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var patch draftPatch
	if err := decodeBody(w, r, &patch); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	var patchErr error
	err := sess.Controller.UpdateDraft(func(d fixtures.Draft) fixtures.Draft {
		next, err := patch.apply(d)
		if err != nil {
			patchErr = err
			return d
		}
		return next
	})
	if err != nil {
		writeWorkflowError(w, r, err, h.logger)
		return
	}
	if patchErr != nil {
		writeError(w, r, nethttp.StatusUnprocessableEntity, patchErr.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.render(sess, false), h.logger)
}

// SetMode switches a form between schedule and score mode.
func (h *Handler) SetMode(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req modeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	mode, ok := fixtures.ParseMode(req.Mode)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "mode must be schedule or score", h.logger)
		return
	}
	if err := sess.Controller.SetMode(mode); err != nil {
		writeWorkflowError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.render(sess, false), h.logger)
}

// Submit runs the validate, conflict check, dispatch workflow for a form.
func (h *Handler) Submit(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	logger := loggerFromContext(r, h.logger).With(slog.String(logging.FieldFormID, sess.ID))
	ctx := logging.WithLogger(h.upstreamContext(r), logger)

	outcome, err := sess.Controller.Submit(ctx)
	if err != nil {
		writeWorkflowError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, submitResponse{Outcome: outcome, Form: h.render(sess, false)}, h.logger)
}

// DeleteForm tears a form down.
func (h *Handler) DeleteForm(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := chi.URLParam(r, "id")
	if !h.forms.Delete(id) {
		writeError(w, r, nethttp.StatusNotFound, "form not found", h.logger)
		return
	}
	w.WriteHeader(nethttp.StatusNoContent)
}

func (h *Handler) session(w nethttp.ResponseWriter, r *nethttp.Request) (*store.Session, bool) {
	sess, ok := h.forms.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "form not found", h.logger)
		return nil, false
	}
	return sess, true
}

func (h *Handler) render(sess *store.Session, withReference bool) formResponse {
	resp := formResponse{ID: sess.ID, View: sess.Controller.View()}
	if withReference {
		catalog := sess.Catalog
		resp.Reference = &catalog
	}
	return resp
}

// upstreamContext forwards the caller's session token to the league API.
func (h *Handler) upstreamContext(r *nethttp.Request) context.Context {
	ctx := r.Context()
	if token := requestutil.BearerToken(r); token != "" {
		ctx = leagueapi.WithToken(ctx, token)
	}
	return ctx
}

func decodeBody(w nethttp.ResponseWriter, r *nethttp.Request, dest any) error {
	dec := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}
