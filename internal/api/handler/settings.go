package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/megagoal/megagoal-data/internal/api/respond"
	"github.com/megagoal/megagoal-data/internal/match"
	"github.com/megagoal/megagoal-data/internal/store"
)

// GetLeaguesSettings returns all league settings rows.
// @Summary List league settings
// @Description Returns the per-league operational settings: activity flag, update frequency, last update, and next scheduled fixture.
// @Tags settings
// @Produce json
// @Success 200 {array} match.LeagueSettings
// @Router /leagues_settings [get]
func (h *Handler) GetLeaguesSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.All(r.Context())
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to fetch league settings")
		return
	}
	if settings == nil {
		settings = []match.LeagueSettings{}
	}
	respond.WriteJSONObject(w, http.StatusOK, settings)
}

type updateFrequencyRequest struct {
	LeagueID        int `json:"league_id"`
	UpdateFrequency int `json:"update_frequency"`
}

// ChangeUpdateFrequency sets a league's update frequency.
// @Summary Change league update frequency
// @Tags settings
// @Accept json
// @Produce json
// @Param body body updateFrequencyRequest true "League id and new frequency"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /leagues_settings/update_frequency [patch]
func (h *Handler) ChangeUpdateFrequency(w http.ResponseWriter, r *http.Request) {
	var req updateFrequencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LeagueID == 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "league_id is required")
		return
	}

	err := h.settings.SetUpdateFrequency(r.Context(), req.LeagueID, req.UpdateFrequency)
	if errors.Is(err, store.ErrNotFound) {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_LEAGUE", "No settings for this league")
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to update frequency")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{"acknowledged": true})
}

type setActiveRequest struct {
	LeagueID int  `json:"league_id"`
	IsActive bool `json:"is_active"`
}

// ChangeIsActive toggles whether a league is actively followed.
// @Summary Toggle league activity
// @Tags settings
// @Accept json
// @Produce json
// @Param body body setActiveRequest true "League id and activity flag"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /leagues_settings/is_active [patch]
func (h *Handler) ChangeIsActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LeagueID == 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "league_id is required")
		return
	}

	err := h.settings.SetActive(r.Context(), req.LeagueID, req.IsActive)
	if errors.Is(err, store.ErrNotFound) {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_LEAGUE", "No settings for this league")
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to update activity")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{"acknowledged": true})
}
