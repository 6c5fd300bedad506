// Package handlers wires HTTP routes to the screen services.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jayala/vex-stats-service/internal/app/awards"
	"github.com/jayala/vex-stats-service/internal/app/dashboard"
	"github.com/jayala/vex-stats-service/internal/app/events"
	"github.com/jayala/vex-stats-service/internal/app/skills"
	"github.com/jayala/vex-stats-service/internal/app/teamlookup"
	"github.com/jayala/vex-stats-service/internal/fetch"
	"github.com/jayala/vex-stats-service/internal/providers"
	"github.com/jayala/vex-stats-service/internal/session"
)

// Handler wires HTTP routes to the screen services.
type Handler struct {
	lookup    *teamlookup.Service
	dashboard *dashboard.Service
	skills    *skills.Service
	awards    *awards.Service
	events    *events.Service
	session   *session.Manager
	logger    *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(
	lookup *teamlookup.Service,
	dash *dashboard.Service,
	sk *skills.Service,
	aw *awards.Service,
	ev *events.Service,
	sess *session.Manager,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		lookup:    lookup,
		dashboard: dash,
		skills:    sk,
		awards:    aw,
		events:    ev,
		session:   sess,
		logger:    logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. Screens fetch on demand, so the
// service is ready unless a screen's most recent fetch failed.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	statuses := map[string]fetch.Status{
		"dashboard": h.dashboard.Status(),
		"skills":    h.skills.Status(),
		"awards":    h.awards.Status(),
		"events":    h.events.Status(),
	}

	for _, status := range statuses {
		if status.Phase == fetch.PhaseFailure {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status":  "degraded",
				"screens": statuses,
			}, h.logger)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ready",
		"screens": statuses,
	}, h.logger)
}

// TeamLookup resolves ?number= to team candidates.
func (h *Handler) TeamLookup(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	teams, err := h.lookup.Lookup(r.Context(), number)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	if len(teams) == 0 {
		writeError(w, r, http.StatusNotFound, "no teams match that number", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"number": number,
		"teams":  teams,
	}, h.logger)
}

// Dashboard serves the home-screen rollup for a team.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}
	model, err := h.dashboard.Fetch(r.Context(), teamID)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Info("served dashboard", "team_id", teamID)
	}
	writeJSON(w, http.StatusOK, model, h.logger)
}

// Skills serves the season-grouped skills history for a team.
func (h *Handler) Skills(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}
	model, err := h.skills.Fetch(r.Context(), teamID)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model, h.logger)
}

// Awards serves the season-grouped awards list for a team.
func (h *Handler) Awards(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}
	model, err := h.awards.Fetch(r.Context(), teamID)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model, h.logger)
}

// EventsList serves the event dropdown entries, newest first.
func (h *Handler) EventsList(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}
	list, err := h.events.List(r.Context(), teamID)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"team_id": teamID,
		"events":  list,
	}, h.logger)
}

// EventDetail serves the per-event rollup.
func (h *Handler) EventDetail(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}
	eventID, err := strconv.Atoi(chi.URLParam(r, "eventID"))
	if err != nil || eventID <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid event id", h.logger)
		return
	}
	detail, err := h.events.Detail(r.Context(), teamID, eventID)
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail, h.logger)
}

// SessionTeam returns the currently selected team.
func (h *Handler) SessionTeam(w http.ResponseWriter, r *http.Request) {
	team, ok := h.session.Selected()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no team selected", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"team":   team,
		"header": team.Header(),
	}, h.logger)
}

// SelectSessionTeam pins the session to a team.
func (h *Handler) SelectSessionTeam(w http.ResponseWriter, r *http.Request) {
	var team session.SelectedTeam
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil || team.ID <= 0 || team.Number == "" {
		writeError(w, r, http.StatusBadRequest, "invalid team payload", h.logger)
		return
	}
	h.session.Select(team)
	writeJSON(w, http.StatusOK, map[string]any{
		"team":   team,
		"header": team.Header(),
	}, h.logger)
}

// ClearSessionTeam unpins the session.
func (h *Handler) ClearSessionTeam(w http.ResponseWriter, r *http.Request) {
	h.session.ClearSelected()
	w.WriteHeader(http.StatusNoContent)
}

// Favorites lists saved teams, optionally filtered by ?q=.
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	favs := h.session.FilterFavorites(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{"favorites": favs}, h.logger)
}

// AddFavorite saves a team to the favorites list.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var fav session.Favorite
	if err := json.NewDecoder(r.Body).Decode(&fav); err != nil || fav.ID <= 0 || fav.Number == "" {
		writeError(w, r, http.StatusBadRequest, "invalid favorite payload", h.logger)
		return
	}
	h.session.AddFavorite(fav)
	writeJSON(w, http.StatusCreated, fav, h.logger)
}

// RemoveFavorite deletes one saved team by id.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid favorite id", h.logger)
		return
	}
	h.session.RemoveFavorite(id)
	w.WriteHeader(http.StatusNoContent)
}

// ClearFavorites drops the whole favorites list.
func (h *Handler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	h.session.ClearFavorites()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) teamID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeFetchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, teamlookup.ErrInvalidNumber):
		writeError(w, r, http.StatusBadRequest, "invalid team number", h.logger)
	case errors.Is(err, events.ErrEventNotFound):
		writeError(w, r, http.StatusNotFound, "event not found", h.logger)
	default:
		status := http.StatusInternalServerError
		if _, ok := providers.AsServerError(err); ok {
			status = http.StatusBadGateway
		} else if _, ok := providers.AsNetworkError(err); ok {
			status = http.StatusBadGateway
		}
		writeError(w, r, status, providers.UserMessage(err), h.logger)
	}
}
