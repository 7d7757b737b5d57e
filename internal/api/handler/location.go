package handler

import (
	"encoding/json"
	"net/http"

	"github.com/megagoal/megagoal-data/internal/api/respond"
	"github.com/megagoal/megagoal-data/internal/match"
)

// GetLocations returns the locations visible to the requesting user.
// @Summary List locations
// @Description Returns public locations plus the authenticated user's private ones, each with its tracked-match count.
// @Tags locations
// @Produce json
// @Success 200 {array} match.Location
// @Router /locations [get]
func (h *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	// Anonymous callers see public locations only.
	username := Username(r.Context())

	locations, err := h.locations.ForUser(r.Context(), username)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to fetch locations")
		return
	}
	if locations == nil {
		locations = []match.Location{}
	}
	respond.WriteJSONObject(w, http.StatusOK, locations)
}

// CreateLocation adds a location owned by the authenticated user.
// @Summary Create a location
// @Description Creates a watch location owned by the authenticated user and returns it with its generated id.
// @Tags locations
// @Accept json
// @Produce json
// @Param body body match.Location true "Location (id and matchCount ignored)"
// @Success 201 {object} match.Location
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /locations [post]
func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUsername(w, r)
	if !ok {
		return
	}

	var l match.Location
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil || l.Name == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "name is required")
		return
	}

	id, err := h.locations.Create(r.Context(), username, &l)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to create location")
		return
	}
	l.ID = id
	l.Username = username
	l.MatchCount = 0
	respond.WriteJSONObject(w, http.StatusCreated, l)
}
