// Package notifier runs the standalone polling process that watches for
// completed games and dispatches one highlight notification per game.
//
// Cycle: list finished games → cold-start amnesty → per-game tracker
// decision → fetch events + clips → reconstruct scores → correlate clips →
// notify and resolve. Network failures leave a game pending for the next
// cycle; only a successful check or the retry-window timeout resolves it.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nordsport/matchfeed/internal/highlight"
	"github.com/nordsport/matchfeed/internal/provider"
	"github.com/nordsport/matchfeed/internal/timeline"
	"github.com/nordsport/matchfeed/internal/tracker"
)

// Feed is the slice of the data-fetch layer the pipeline needs.
type Feed interface {
	Schedule(ctx context.Context, date time.Time) ([]provider.GameSummary, error)
	Events(ctx context.Context, gameID string) ([]provider.Event, error)
	Clips(ctx context.Context, gameID string) ([]provider.VideoClip, error)
}

// Pipeline wires the feed, tracker, and sender into the polling loop.
type Pipeline struct {
	feed    Feed
	tracker *tracker.Tracker
	sender  Sender
	logger  *slog.Logger
}

// NewPipeline creates the polling pipeline. sender may be nil, in which
// case notifications are logged but not dispatched.
func NewPipeline(feed Feed, tr *tracker.Tracker, sender Sender, logger *slog.Logger) *Pipeline {
	return &Pipeline{feed: feed, tracker: tr, sender: sender, logger: logger}
}

// CycleResult tracks the outcome of one polling cycle.
type CycleResult struct {
	GamesFound int
	Skipped    int
	Checked    int
	Notified   int
	GaveUp     int
	Errors     []string
	Duration   time.Duration
}

// Summary returns a human-readable summary.
func (r *CycleResult) Summary() string {
	return fmt.Sprintf("found=%d skipped=%d checked=%d notified=%d gave_up=%d errors=%d dur=%s",
		r.GamesFound, r.Skipped, r.Checked, r.Notified, r.GaveUp,
		len(r.Errors), r.Duration.Round(time.Millisecond))
}

// Run executes the polling loop until ctx is cancelled. One cycle runs
// immediately, then one per interval tick.
func (p *Pipeline) Run(ctx context.Context, interval time.Duration) {
	p.logger.Info("Notifier polling loop started", "interval", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.cycle(ctx)
	for {
		select {
		case <-ticker.C:
			p.cycle(ctx)
		case <-ctx.Done():
			p.logger.Info("Notifier polling loop stopped")
			return
		}
	}
}

func (p *Pipeline) cycle(ctx context.Context) {
	result := p.RunCycle(ctx, time.Now())
	metricCycles.Inc()
	p.logger.Info("Cycle complete", "summary", result.Summary())
	for _, e := range result.Errors {
		p.logger.Warn("cycle error", "error", e)
	}
}

// RunCycle performs one polling cycle at the given wall-clock time.
// Sequential by design: the seen-set has a single writer.
func (p *Pipeline) RunCycle(ctx context.Context, now time.Time) CycleResult {
	start := time.Now()
	var result CycleResult

	finished, err := p.finishedGames(ctx, now)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		result.Duration = time.Since(start)
		metricErrors.Inc()
		return result
	}
	result.GamesFound = len(finished)

	// Cold-start amnesty: resolve all but the most recent finished game
	// so a first deployment does not burst historical notifications.
	candidates := make([]tracker.Candidate, len(finished))
	for i, g := range finished {
		candidates[i] = tracker.Candidate{GameID: g.ID, StartTime: g.StartTime}
	}
	if resolved, err := p.tracker.Amnesty(ctx, candidates); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("amnesty: %s", err))
	} else if len(resolved) > 0 {
		p.logger.Info("Cold-start amnesty applied", "resolved", len(resolved))
		metricResolved.Add(float64(len(resolved)))
	}

	for _, game := range finished {
		switch p.tracker.Decide(game.ID, game.StartTime, now) {
		case tracker.ActionSkip:
			result.Skipped++

		case tracker.ActionGiveUp:
			if err := p.tracker.MarkResolved(ctx, game.ID); err != nil {
				// Append is retried next cycle; the game stays pending.
				result.Errors = append(result.Errors, fmt.Sprintf("game %s: %s", game.ID, err))
				metricErrors.Inc()
				continue
			}
			result.GaveUp++
			metricResolved.Inc()
			p.logger.Info("Retry window exceeded, giving up", "game_id", game.ID)

		case tracker.ActionCheck:
			result.Checked++
			metricChecked.Inc()
			notified, err := p.checkGame(ctx, game)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("game %s: %s", game.ID, err))
				metricErrors.Inc()
				continue
			}
			if notified {
				result.Notified++
				metricNotified.Inc()
				metricResolved.Inc()
			}
		}
	}

	result.Duration = time.Since(start)
	return result
}

// finishedGames lists post-game entries from today's and yesterday's
// schedules — the retry window spans the date boundary.
func (p *Pipeline) finishedGames(ctx context.Context, now time.Time) ([]provider.GameSummary, error) {
	var finished []provider.GameSummary
	seen := make(map[string]bool)
	for _, date := range []time.Time{now.AddDate(0, 0, -1), now} {
		games, err := p.feed.Schedule(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("schedule %s: %w", date.Format("2006-01-02"), err)
		}
		for _, g := range games {
			if g.Finished() && !seen[g.ID] {
				seen[g.ID] = true
				finished = append(finished, g)
			}
		}
	}
	return finished, nil
}

// GameCheck is the correlation outcome for one game.
type GameCheck struct {
	FinalScore string
	Goals      int
	Unresolved int
	Clip       *provider.VideoClip
}

// CheckGame fetches one game's events and clips and correlates them.
// Pure inspection — no notification, no seen-set mutation. Also backs the
// CLI's one-shot dry run.
func (p *Pipeline) CheckGame(ctx context.Context, game provider.GameSummary) (*GameCheck, error) {
	raws, err := p.feed.Events(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	clips, err := p.feed.Clips(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch clips: %w", err)
	}

	events := timeline.NormalizeAll(raws, game.Home.Code)
	res := timeline.ReconstructScores(events)
	if len(res.Unresolved) > 0 {
		p.logger.Warn("Goals with unresolvable side excluded from score",
			"game_id", game.ID, "count", len(res.Unresolved))
	}

	check := &GameCheck{
		FinalScore: timeline.FinalScore(res, &game),
		Goals:      len(res.Goals),
		Unresolved: len(res.Unresolved),
	}

	// The most recent goal with a correlated clip wins: closest to the
	// full-game highlight the provider publishes last.
	for i := len(res.Goals) - 1; i >= 0; i-- {
		if clip := highlight.FindClip(res.Goals[i], clips); clip != nil {
			check.Clip = clip
			break
		}
	}
	return check, nil
}

// checkGame runs one eligible game end-to-end: correlate, notify, resolve.
// Returns true when a notification went out and the game was resolved.
func (p *Pipeline) checkGame(ctx context.Context, game provider.GameSummary) (bool, error) {
	check, err := p.CheckGame(ctx, game)
	if err != nil {
		return false, err
	}
	if check.Clip == nil {
		// Not clipped yet — stays pending for the next cycle.
		return false, nil
	}

	n := Notification{
		GameID: game.ID,
		Title:  fmt.Sprintf("%s %s %s", game.Home.Code, check.FinalScore, game.Away.Code),
		Body:   "Match highlights are available",
		ClipID: check.Clip.ID,
	}
	if p.sender != nil {
		if err := p.sender.Send(ctx, n); err != nil {
			return false, fmt.Errorf("send notification: %w", err)
		}
	} else {
		p.logger.Info("Notification (dry run)", "game_id", n.GameID, "title", n.Title, "clip_id", n.ClipID)
	}

	if err := p.tracker.MarkResolved(ctx, game.ID); err != nil {
		// Notification went out but the seen record is not durable yet;
		// the next cycle risks one duplicate, not corruption.
		return true, fmt.Errorf("mark resolved: %w", err)
	}
	return true, nil
}
