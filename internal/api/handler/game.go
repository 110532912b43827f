package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nordsport/matchfeed/internal/api/respond"
	"github.com/nordsport/matchfeed/internal/cache"
	"github.com/nordsport/matchfeed/internal/config"
	"github.com/nordsport/matchfeed/internal/highlight"
	"github.com/nordsport/matchfeed/internal/provider"
	"github.com/nordsport/matchfeed/internal/timeline"
)

// TimelineEntry is one rendered row of the display sequence. Markers carry
// only kind, period, and label; data rows carry the kind-specific fields.
type TimelineEntry struct {
	Kind    string          `json:"kind"`
	Period  int             `json:"period"`
	Label   string          `json:"label,omitempty"` // markers: "Period 3", "Half 1"
	Clock   string          `json:"clock,omitempty"`
	Side    string          `json:"side,omitempty"`
	Team    string          `json:"team,omitempty"`
	Player  string          `json:"player,omitempty"`
	Score   *timeline.Score `json:"score,omitempty"`     // goals: running score
	Tags    string          `json:"tags,omitempty"`      // goals: modifier tags
	Text    string          `json:"text,omitempty"`      // penalties/cards: display text
	Minutes int             `json:"minutes,omitempty"`   // penalties
	Result  string          `json:"result,omitempty"`    // shooting stages: "4/5"
	Out     string          `json:"playerOut,omitempty"` // substitutions
	ClipID  string          `json:"clipId,omitempty"`    // goals with a correlated clip
}

// TimelineResponse is the payload of the timeline endpoint.
type TimelineResponse struct {
	GameID     string          `json:"gameId"`
	Sport      string          `json:"sport"`
	State      string          `json:"state"`
	FinalScore string          `json:"finalScore"`
	Unresolved int             `json:"unresolvedGoals,omitempty"`
	Entries    []TimelineEntry `json:"entries"`
}

// GetTimeline returns the grouped, marker-interleaved display sequence for
// one game, most recent event first.
// @Summary Get game timeline
// @Description Returns the display-ordered event timeline with period/half markers, running scores, and correlated highlight clips.
// @Tags games
// @Produce json
// @Param gameID path string true "Game identifier"
// @Success 200 {object} handler.TimelineResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/{gameID}/timeline [get]
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	cacheKey := "timeline:" + gameID
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLLive, true)
		return
	}

	sum, events, clips, ok := h.fetchGame(w, r, gameID)
	if !ok {
		return
	}

	resp := buildTimelineResponse(sum, events, clips)
	data, err := json.Marshal(resp)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "Failed to encode timeline")
		return
	}

	ttl := cache.TTLLive
	if sum.Finished() {
		ttl = cache.TTLFinished
	}
	etag := h.cache.Set(cacheKey, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}

// GoalHighlight is one goal/clip correlation from the highlights endpoint.
type GoalHighlight struct {
	Period string          `json:"period"`
	Clock  string          `json:"clock,omitempty"`
	Player string          `json:"player,omitempty"`
	Score  *timeline.Score `json:"score,omitempty"`
	ClipID string          `json:"clipId,omitempty"`
}

// GetHighlights returns the per-goal clip references for one game.
// @Summary Get goal highlights
// @Description Returns every goal in chronological order with its optional correlated clip reference.
// @Tags games
// @Produce json
// @Param gameID path string true "Game identifier"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/{gameID}/highlights [get]
func (h *Handler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	sum, events, clips, ok := h.fetchGame(w, r, gameID)
	if !ok {
		return
	}

	normalized := timeline.NormalizeAll(events, sum.Home.Code)
	res := timeline.ReconstructScores(normalized)

	goals := make([]GoalHighlight, 0, len(res.Goals))
	for _, g := range res.Goals {
		gh := GoalHighlight{
			Period: fmt.Sprintf("%d", g.Period),
			Clock:  g.Clock,
			Player: g.Player,
			Score:  g.Goal.RunningScore,
		}
		if clip := highlight.FindClip(g, clips); clip != nil {
			gh.ClipID = clip.ID
		}
		goals = append(goals, gh)
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"gameId":    gameID,
		"goals":     goals,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetScore returns the final box score via the fallback chain: computed
// running score, then the summary score, then the per-team score, then "-".
// @Summary Get game score
// @Description Returns the running-score-derived box score, usable even when the provider's own score field is stale or missing.
// @Tags games
// @Produce json
// @Param gameID path string true "Game identifier"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/{gameID}/score [get]
func (h *Handler) GetScore(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	sum, events, _, ok := h.fetchGame(w, r, gameID)
	if !ok {
		return
	}

	normalized := timeline.NormalizeAll(events, sum.Home.Code)
	res := timeline.ReconstructScores(normalized)

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"gameId":     gameID,
		"home":       sum.Home.Code,
		"away":       sum.Away.Code,
		"finalScore": timeline.FinalScore(res, sum),
		"state":      sum.State,
	})
}

// fetchGame loads the summary, events, and clips for a game, writing the
// error response itself when the feed fails.
func (h *Handler) fetchGame(w http.ResponseWriter, r *http.Request, gameID string) (*provider.GameSummary, []provider.Event, []provider.VideoClip, bool) {
	ctx := r.Context()

	sum, err := h.feed.Game(ctx, gameID)
	if err != nil {
		respond.WriteError(w, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found: "+gameID)
		return nil, nil, nil, false
	}
	events, err := h.feed.Events(ctx, gameID)
	if err != nil {
		respond.WriteError(w, http.StatusBadGateway, "FEED_UNAVAILABLE", "Event feed unavailable")
		return nil, nil, nil, false
	}
	clips, err := h.feed.Clips(ctx, gameID)
	if err != nil {
		// Clips are an enrichment; the timeline still renders without them.
		clips = nil
	}
	return sum, events, clips, true
}

// buildTimelineResponse runs the full pipeline and renders display entries.
func buildTimelineResponse(sum *provider.GameSummary, raws []provider.Event, clips []provider.VideoClip) *TimelineResponse {
	normalized := timeline.NormalizeAll(raws, sum.Home.Code)
	res := timeline.ReconstructScores(normalized)
	seq := timeline.BuildTimeline(normalized, timeline.GroupOptions{
		Sport:     sum.Sport,
		GameEnded: sum.Finished(),
	})
	matches := highlight.Correlate(seq, clips)

	label := "Period"
	if sport, ok := config.SportRegistry[sum.Sport]; ok {
		label = sport.PeriodLabel
	}

	entries := make([]TimelineEntry, 0, len(seq))
	for i, e := range seq {
		entry := TimelineEntry{
			Kind:   string(e.Kind),
			Period: e.Period,
			Clock:  e.Clock,
			Side:   string(e.Side),
			Team:   e.Team,
			Player: e.Player,
		}
		switch {
		case e.IsMarker():
			entry.Label = fmt.Sprintf("%s %d", label, e.Period)
		case e.Goal != nil:
			entry.Score = e.Goal.RunningScore
			entry.Tags = timeline.GoalModifiers(e.Goal)
			if clip, ok := matches[i]; ok {
				entry.ClipID = clip.ID
			}
		case e.Penalty != nil:
			entry.Text = timeline.PenaltyText(e.Penalty.Code)
			entry.Minutes = e.Penalty.Minutes
		case e.Card != nil:
			entry.Text = timeline.PenaltyText(e.Card.Code)
		case e.Sub != nil:
			entry.Out = e.Sub.PlayerOut
		case e.Shooting != nil:
			entry.Result = fmt.Sprintf("%d/%d", e.Shooting.Hits, e.Shooting.Shots)
		}
		entries = append(entries, entry)
	}

	return &TimelineResponse{
		GameID:     sum.ID,
		Sport:      sum.Sport,
		State:      sum.State,
		FinalScore: timeline.FinalScore(res, sum),
		Unresolved: len(res.Unresolved),
		Entries:    entries,
	}
}
