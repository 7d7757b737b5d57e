package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/megagoal/megagoal-data/internal/api/respond"
	"github.com/megagoal/megagoal-data/internal/match"
	"github.com/megagoal/megagoal-data/internal/page"
	"github.com/megagoal/megagoal-data/internal/store"
)

// requireUsername returns the authenticated username or writes a 401.
func requireUsername(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := Username(r.Context())
	if username == "" {
		respond.WriteError(w, http.StatusUnauthorized, "MISSING_IDENTITY", "No authenticated user")
		return "", false
	}
	return username, true
}

// GetMatches returns the authenticated user's tracking records.
// @Summary List tracked matches
// @Description Returns all matches the authenticated user has tracked, newest kickoff first, optionally narrowed by team and season. With page set, returns one page of 50 wrapped with totals instead of the flat list.
// @Tags matches
// @Produce json
// @Param team_id query int false "Only matches involving this team"
// @Param season query int false "Only matches of this season"
// @Param page query int false "Page number (1-based); omit for the full list"
// @Success 200 {array} match.Tracked
// @Failure 401 {object} respond.ErrorResponse
// @Router /matches [get]
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUsername(w, r)
	if !ok {
		return
	}
	var filter store.TrackedFilter
	filter.TeamID, _ = strconv.Atoi(r.URL.Query().Get("team_id"))
	filter.Season, _ = strconv.Atoi(r.URL.Query().Get("season"))

	tracked, err := h.tracking.ByUser(r.Context(), username, filter)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to fetch matches")
		return
	}
	if tracked == nil {
		tracked = []match.Tracked{}
	}

	if p := r.URL.Query().Get("page"); p != "" {
		pageNum, err := strconv.Atoi(p)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_PAGE", "page must be an integer")
			return
		}
		respond.WriteJSONObject(w, http.StatusOK, page.Offset(tracked, pageNum, page.RoundBatchSize))
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, tracked)
}

// CreateMatch records that the authenticated user watched a fixture.
// @Summary Track a match
// @Description Creates a tracking record for the authenticated user. The body carries the fixture reference and a denormalized league/team/goal snapshot.
// @Tags matches
// @Accept json
// @Produce json
// @Param body body match.Tracked true "Tracking record"
// @Success 201 {object} match.Tracked
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /matches [post]
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUsername(w, r)
	if !ok {
		return
	}

	var t match.Tracked
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Body must be a tracking record")
		return
	}
	if t.Fixture.ID == 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_FIXTURE", "fixture.id is required")
		return
	}

	err := h.tracking.Create(r.Context(), username, &t)
	if errors.Is(err, store.ErrDuplicate) {
		respond.WriteError(w, http.StatusConflict, "ALREADY_TRACKED", "Match already tracked")
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to create match")
		return
	}
	t.Username = username
	respond.WriteJSONObject(w, http.StatusCreated, t)
}

// relocateRequest changes the location of a tracking record.
type relocateRequest struct {
	FixtureID int    `json:"fixtureId"`
	Location  string `json:"location"`
}

// ChangeMatchLocation reassigns the location of the user's tracking record.
// @Summary Relocate a tracked match
// @Description Changes where the authenticated user watched a fixture. Only the record's owner may relocate it.
// @Tags matches
// @Accept json
// @Produce json
// @Param body body relocateRequest true "Fixture id and new location id (empty clears)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /matches/location [patch]
func (h *Handler) ChangeMatchLocation(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUsername(w, r)
	if !ok {
		return
	}

	var req relocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FixtureID == 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "fixtureId is required")
		return
	}

	err := h.tracking.Relocate(r.Context(), username, req.FixtureID, req.Location)
	if errors.Is(err, store.ErrNotFound) {
		respond.WriteError(w, http.StatusNotFound, "NOT_TRACKED", "No tracking record for this fixture")
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to update location")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"fixtureId": req.FixtureID,
		"location":  req.Location,
	})
}

// DeleteMatch removes the user's tracking record for a fixture.
// @Summary Untrack a match
// @Description Deletes the authenticated user's tracking record for a fixture. Only the record's owner may delete it.
// @Tags matches
// @Produce json
// @Param fixtureID path int true "Fixture ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /matches/{fixtureID} [delete]
func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUsername(w, r)
	if !ok {
		return
	}
	fixtureID, err := strconv.Atoi(chi.URLParam(r, "fixtureID"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Fixture ID must be an integer")
		return
	}

	err = h.tracking.Delete(r.Context(), username, fixtureID)
	if errors.Is(err, store.ErrNotFound) {
		respond.WriteError(w, http.StatusNotFound, "NOT_TRACKED", "No tracking record for this fixture")
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to delete match")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
