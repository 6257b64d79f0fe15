package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"sports-gateway/internal/app/highlights"
	"sports-gateway/internal/app/schedule"
	teamsapp "sports-gateway/internal/app/teams"
	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
	"sports-gateway/internal/gateway"
	"sports-gateway/internal/logging"
	"sports-gateway/internal/poller"
	"sports-gateway/internal/providers"
)

const (
	// maxCount bounds the highlight count a client may request.
	maxCount = 50
	// maxFavorites bounds the teams one favorites request may fan out to.
	maxFavorites = 20
)

// Handler wires HTTP routes to the app services.
type Handler struct {
	schedule   *schedule.Service
	highlights *highlights.Service
	teams      *teamsapp.Service
	logger     *slog.Logger
	statusFn   func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case /ready always succeeds.
func NewHandler(sched *schedule.Service, hl *highlights.Service, tm *teamsapp.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		schedule:   sched,
		highlights: hl,
		teams:      tm,
		logger:     logger,
		statusFn:   statusFn,
	}
}

type gamesResponse struct {
	League leagues.League `json:"league"`
	Team   string         `json:"team,omitempty"`
	Games  []events.Game  `json:"games"`
	resultMeta
}

type allGamesResponse struct {
	Leagues []gamesResponse `json:"leagues"`
}

type highlightsResponse struct {
	League     leagues.League     `json:"league"`
	Team       string             `json:"team,omitempty"`
	Highlights []events.Highlight `json:"highlights"`
	resultMeta
}

type favoritesResponse struct {
	Teams []highlightsResponse `json:"teams"`
}

type teamsResponse struct {
	League leagues.League `json:"league,omitempty"`
	Teams  []teams.Team   `json:"teams"`
	Count  int            `json:"count"`
}

type rostersResponse struct {
	Leagues []teamsResponse `json:"leagues"`
}

func newGamesResponse(league leagues.League, team string, res gateway.GamesResult) gamesResponse {
	games := res.Records
	if games == nil {
		games = []events.Game{}
	}
	return gamesResponse{
		League:     league,
		Team:       team,
		Games:      games,
		resultMeta: metaOf(res.Provenance, res.FetchedAt, res.CacheHit, len(games)),
	}
}

func newHighlightsResponse(league leagues.League, team string, res gateway.HighlightsResult) highlightsResponse {
	hl := res.Records
	if hl == nil {
		hl = []events.Highlight{}
	}
	return highlightsResponse{
		League:     league,
		Team:       team,
		Highlights: hl,
		resultMeta: metaOf(res.Provenance, res.FetchedAt, res.CacheHit, len(hl)),
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the poller's recent health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Leagues lists the supported leagues.
func (h *Handler) Leagues(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leagues": leagues.Infos()}, h.logger)
}

// Games returns recent completed games for one league, or for every league when none is given.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	raw := strings.TrimSpace(r.URL.Query().Get("league"))
	if raw == "" {
		all := h.schedule.AllLeagues(r.Context())
		resp := allGamesResponse{Leagues: make([]gamesResponse, 0, len(all))}
		for _, lg := range all {
			resp.Leagues = append(resp.Leagues, newGamesResponse(lg.League, "", lg.GamesResult))
		}
		logging.Info(logger, "served games for all leagues", logging.FieldCount, len(resp.Leagues))
		writeJSON(w, http.StatusOK, resp, logger)
		return
	}

	league, ok := h.parseLeague(w, r, raw)
	if !ok {
		return
	}
	res := h.schedule.Games(r.Context(), league)
	logging.Info(logger, "served games",
		logging.FieldLeague, league.String(),
		logging.FieldProvenance, string(res.Provenance),
		logging.FieldCount, len(res.Records),
	)
	writeResult(w, res.Provenance, newGamesResponse(league, "", res), logger)
}

// TeamSchedule returns a league's recent games involving one team.
func (h *Handler) TeamSchedule(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	league, ok := h.parseLeague(w, r, r.URL.Query().Get("league"))
	if !ok {
		return
	}
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	if team == "" {
		writeError(w, r, http.StatusBadRequest, "team is required", h.logger)
		return
	}
	res := h.schedule.TeamSchedule(r.Context(), league, team)
	writeResult(w, res.Provenance, newGamesResponse(league, team, res), loggerFromContext(r, h.logger))
}

// Highlights returns recent highlights for a league and optional team, or for a list of
// favorites given as favorites=NBA:LAL,NFL:KC.
func (h *Handler) Highlights(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	q := r.URL.Query()
	count, err := parseCount(q.Get("count"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if raw := strings.TrimSpace(q.Get("favorites")); raw != "" {
		favs, err := h.parseFavorites(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
		results := h.highlights.ForTeams(r.Context(), favs, count)
		resp := favoritesResponse{Teams: make([]highlightsResponse, 0, len(results))}
		for _, th := range results {
			resp.Teams = append(resp.Teams, newHighlightsResponse(th.League, th.Team, th.HighlightsResult))
		}
		writeJSON(w, http.StatusOK, resp, loggerFromContext(r, h.logger))
		return
	}

	league, ok := h.parseLeague(w, r, q.Get("league"))
	if !ok {
		return
	}
	team := strings.TrimSpace(q.Get("team"))
	if team != "" {
		resolved, ok := h.teams.Resolve(league, team)
		if !ok {
			writeError(w, r, http.StatusBadRequest, "unknown team "+strconv.Quote(team), h.logger)
			return
		}
		team = resolved.Abbreviation
	}
	res := h.highlights.Highlights(r.Context(), league, team, count)
	writeResult(w, res.Provenance, newHighlightsResponse(league, team, res), loggerFromContext(r, h.logger))
}

// Teams lists the roster for one league, or every league's roster when none is given.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	raw := strings.TrimSpace(r.URL.Query().Get("league"))
	if raw == "" {
		resp := rostersResponse{}
		for _, l := range leagues.All() {
			roster := h.teams.Roster(l)
			resp.Leagues = append(resp.Leagues, teamsResponse{League: l, Teams: roster, Count: len(roster)})
		}
		writeJSON(w, http.StatusOK, resp, h.logger)
		return
	}
	league, ok := h.parseLeague(w, r, raw)
	if !ok {
		return
	}
	roster := h.teams.Roster(league)
	writeJSON(w, http.StatusOK, teamsResponse{League: league, Teams: roster, Count: len(roster)}, h.logger)
}

// SearchTeams finds teams by name.
func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "q is required", h.logger)
		return
	}
	found, err := h.teams.Search(r.Context(), query)
	if err != nil {
		writeError(w, r, http.StatusBadGateway, "team search unavailable", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, teamsResponse{Teams: found, Count: len(found)}, loggerFromContext(r, h.logger))
}

// TeamByID returns a single team by roster id or provider id.
func (h *Handler) TeamByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	team, err := h.teams.Lookup(r.Context(), id)
	switch {
	case errors.Is(err, providers.ErrTeamNotFound):
		writeError(w, r, http.StatusNotFound, "team not found", h.logger)
	case err != nil:
		writeError(w, r, http.StatusBadGateway, "team lookup unavailable", h.logger)
	default:
		writeJSON(w, http.StatusOK, team, h.logger)
	}
}

func (h *Handler) parseLeague(w http.ResponseWriter, r *http.Request, raw string) (leagues.League, bool) {
	if strings.TrimSpace(raw) == "" {
		writeError(w, r, http.StatusBadRequest, "league is required", h.logger)
		return "", false
	}
	league, ok := leagues.Parse(raw)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unsupported league", h.logger)
		return "", false
	}
	return league, true
}

func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return gateway.DefaultHighlightTarget, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > maxCount {
		return 0, errors.New("count must be between 1 and " + strconv.Itoa(maxCount))
	}
	return n, nil
}

// parseFavorites reads league:team pairs. Teams must be roster entries and are normalized to
// their abbreviation; repeated teams are dropped.
func (h *Handler) parseFavorites(raw string) ([]highlights.Favorite, error) {
	var favs []highlights.Favorite
	seen := make(map[highlights.Favorite]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		leagueRaw, team, found := strings.Cut(part, ":")
		league, ok := leagues.Parse(leagueRaw)
		if !found || !ok || strings.TrimSpace(team) == "" {
			return nil, errors.New("invalid favorite " + strconv.Quote(part))
		}
		resolved, ok := h.teams.Resolve(league, team)
		if !ok {
			return nil, errors.New("unknown team " + strconv.Quote(part))
		}
		fav := highlights.Favorite{League: league, Team: resolved.Abbreviation}
		if seen[fav] {
			continue
		}
		if len(favs) == maxFavorites {
			return nil, errors.New("at most " + strconv.Itoa(maxFavorites) + " favorites are allowed")
		}
		seen[fav] = true
		favs = append(favs, fav)
	}
	if len(favs) == 0 {
		return nil, errors.New("favorites must not be empty")
	}
	return favs, nil
}
