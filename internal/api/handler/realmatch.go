package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/megagoal/megagoal-data/internal/api/respond"
	"github.com/megagoal/megagoal-data/internal/cache"
	"github.com/megagoal/megagoal-data/internal/live"
	"github.com/megagoal/megagoal-data/internal/match"
	"github.com/megagoal/megagoal-data/internal/page"
	"github.com/megagoal/megagoal-data/internal/rounds"
	"github.com/megagoal/megagoal-data/internal/store"
)

// roundsResponse is the grouped-by-round view of one league-season.
type roundsResponse struct {
	Rounds       []roundGroup `json:"rounds"`
	CurrentRound int          `json:"currentRound"`
}

type roundGroup struct {
	Round       string            `json:"round"`
	DisplayName string            `json:"displayName"`
	Matches     []match.RealMatch `json:"matches"`
}

// dayResponse is the grouped-by-league view of one day's fixtures.
type dayResponse struct {
	Leagues []live.LeagueGroup `json:"leagues"`
	Live    bool               `json:"live"`
}

// GetRealMatches returns the fixtures of a league-season grouped by round,
// or of a team-season as a flat list.
// @Summary List real matches
// @Description Returns fixtures of a league-season grouped into ordered rounds with the current round index, or a team-season as a flat list. Requires league_id+season or team_id+season.
// @Tags real-matches
// @Produce json
// @Param league_id query int false "League ID"
// @Param team_id query int false "Team ID"
// @Param season query int true "Season year"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /real_matches [get]
func (h *Handler) GetRealMatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	season, seasonErr := strconv.Atoi(q.Get("season"))

	switch {
	case q.Get("team_id") != "" && seasonErr == nil:
		teamID, err := strconv.Atoi(q.Get("team_id"))
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_TEAM", "team_id must be an integer")
			return
		}
		matches, err := h.real.ByTeamSeason(r.Context(), teamID, season)
		if err != nil {
			respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to fetch real matches")
			return
		}
		if matches == nil {
			matches = []match.RealMatch{}
		}
		respond.WriteJSONObject(w, http.StatusOK, matches)

	case q.Get("league_id") != "" && seasonErr == nil:
		leagueID, err := strconv.Atoi(q.Get("league_id"))
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_LEAGUE", "league_id must be an integer")
			return
		}
		h.leagueSeasonRounds(w, r, leagueID, season)

	default:
		respond.WriteError(w, http.StatusBadRequest, "INVALID_QUERY",
			"Provide league_id+season or team_id+season")
	}
}

// leagueSeasonRounds serves the cached grouped-by-round view.
func (h *Handler) leagueSeasonRounds(w http.ResponseWriter, r *http.Request, leagueID, season int) {
	cacheKey := fmt.Sprintf("rounds:%d:%d", leagueID, season)
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLRounds, true)
		return
	}

	matches, err := h.real.ByLeagueSeason(r.Context(), leagueID, season)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to fetch real matches")
		return
	}

	groups, current := rounds.Build(matches)
	resp := roundsResponse{Rounds: make([]roundGroup, 0, len(groups)), CurrentRound: current}
	for _, g := range groups {
		resp.Rounds = append(resp.Rounds, roundGroup{
			Round:       g.Round,
			DisplayName: rounds.DisplayName(g.Round),
			Matches:     g.Matches,
		})
	}

	data, err := json.Marshal(resp)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_FAILED", "Failed to encode response")
		return
	}
	etag := h.cache.Set(cacheKey, data, cache.TTLRounds)
	respond.WriteJSON(w, data, etag, cache.TTLRounds, false)
}

// GetRealMatchByID returns a single fixture with whatever enrichment it has.
// @Summary Get a real match
// @Tags real-matches
// @Produce json
// @Param fixtureID path int true "Fixture ID"
// @Success 200 {object} match.RealMatch
// @Failure 404 {object} respond.ErrorResponse
// @Router /real_matches/{fixtureID} [get]
func (h *Handler) GetRealMatchByID(w http.ResponseWriter, r *http.Request) {
	fixtureID, err := strconv.Atoi(chi.URLParam(r, "fixtureID"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Fixture ID must be an integer")
		return
	}

	m, err := h.real.ByID(r.Context(), fixtureID)
	if errors.Is(err, store.ErrNotFound) {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_FIXTURE", "No such fixture")
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to fetch real match")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// GetRealMatchesByDate returns one day's fixtures grouped by league.
// @Summary List real matches by date
// @Description Returns fixtures of one UTC day grouped by league, friendlies last. With live=true, only in-progress fixtures are kept and leagues without any are dropped.
// @Tags real-matches
// @Produce json
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param live query bool false "Filter to live fixtures"
// @Param batches query int false "Show-more batches of 9 per league; 0 or absent returns everything"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /real_matches/date/{date} [get]
func (h *Handler) GetRealMatchesByDate(w http.ResponseWriter, r *http.Request) {
	day, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		return
	}
	liveOnly := r.URL.Query().Get("live") == "true"
	batches, _ := strconv.Atoi(r.URL.Query().Get("batches"))

	matches, err := h.real.ByDate(r.Context(), day)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to fetch real matches")
		return
	}

	view := live.NewDayView(matches)
	resp := dayResponse{Live: liveOnly}
	if liveOnly {
		resp.Leagues = view.LiveGroups(time.Now())
	} else {
		resp.Leagues = view.Groups()
	}
	if batches > 0 {
		resp.Leagues = capPerLeague(resp.Leagues, batches)
	}
	if resp.Leagues == nil {
		resp.Leagues = []live.LeagueGroup{}
	}
	respond.WriteJSONObject(w, http.StatusOK, resp)
}

// capPerLeague limits each league to the first n show-more batches of its
// matches, preserving group order.
func capPerLeague(groups []live.LeagueGroup, n int) []live.LeagueGroup {
	out := make([]live.LeagueGroup, len(groups))
	for i, g := range groups {
		b := page.NewBatch(page.DayBatchSize, len(g.Matches))
		for j := 1; j < n; j++ {
			b.More()
		}
		out[i] = live.LeagueGroup{Key: g.Key, League: g.League, Matches: page.Take(g.Matches, b)}
	}
	return out
}

// GetRealMatchesWithoutStatistics returns tracked fixtures missing all
// enrichment data.
// @Summary List tracked fixtures without enrichment
// @Description Returns one page (50 per page) of fixtures that at least one user tracks but whose statistics, lineups, and events are all missing, newest kickoff first, annotated with tracking usernames.
// @Tags real-matches
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} reconcile.IncompletePage
// @Failure 500 {object} respond.ErrorResponse
// @Router /real_matches/without_statistics [get]
func (h *Handler) GetRealMatchesWithoutStatistics(w http.ResponseWriter, r *http.Request) {
	pageNum := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			pageNum = n
		}
	}

	result, err := h.resolver.ResolveIncomplete(r.Context(), pageNum)
	if err != nil {
		// Never degrade to a truncated page: a store failure is the
		// caller's retry decision.
		respond.WriteError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to resolve incomplete fixtures")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, result)
}
