package app

import (
	"context"
	"sort"
	"time"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/capsule"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/config"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/progression"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/spacedrep"
	"github.com/skherchache-oss/memoraid-app-sub001/internal/store"
)

// App sequences a study event through the two engine components: the
// capsule's review record is updated first, then the learner's reward
// state. The engines are pure and never reach into storage or each other;
// App owns loading records, calling the engines, and persisting the copies
// they return.
type App struct {
	capsules  store.CapsuleRepo
	profile   store.ProfileRepo
	events    store.StudyEventRepo
	scheduler spacedrep.Scheduler
	engine    progression.Engine
}

// New wires an App on top of an open store.
func New(st *store.Store, cfg config.Config) (*App, error) {
	events, err := st.StudyEvents()
	if err != nil {
		return nil, err
	}
	return &App{
		capsules:  st.Capsules(),
		profile:   st.Profile(),
		events:    events,
		scheduler: spacedrep.NewScheduler(cfg.Scheduler),
		engine:    progression.NewEngine(cfg.Engine),
	}, nil
}

// Scheduler exposes the configured scheduler for read-only queries.
func (a *App) Scheduler() spacedrep.Scheduler {
	return a.scheduler
}

// Engine exposes the configured progression engine.
func (a *App) Engine() progression.Engine {
	return a.engine
}

// CreateCapsule stores a new capsule and credits the create action.
func (a *App) CreateCapsule(ctx context.Context, title string, now time.Time) (capsule.Capsule, progression.Result, error) {
	c := capsule.New(title, now)
	if err := a.capsules.Save(ctx, c); err != nil {
		return capsule.Capsule{}, progression.Result{}, err
	}
	res, err := a.applyAction(ctx, progression.Event{Action: progression.ActionCreate}, c.ID, now)
	return c, res, err
}

// ReviewCapsule logs a completed quiz or flashcard review: the capsule's
// stage advances by one and the matching progression action is credited.
func (a *App) ReviewCapsule(ctx context.Context, id string, score int, rt capsule.ReviewType, now time.Time) (capsule.Capsule, progression.Result, error) {
	c, err := a.capsules.Get(ctx, id)
	if err != nil {
		return capsule.Capsule{}, progression.Result{}, err
	}

	c = c.WithReview(capsule.ReviewLog{At: now, Score: score, Type: rt})
	if err := a.capsules.Save(ctx, c); err != nil {
		return capsule.Capsule{}, progression.Result{}, err
	}

	action := progression.ActionFlashcard
	if rt == capsule.ReviewQuiz {
		action = progression.ActionQuiz
	}
	res, err := a.applyAction(ctx, progression.Event{Action: action, Score: score}, c.ID, now)
	return c, res, err
}

// AdvanceStage bumps a capsule's stage without logging a review. Manual
// edits earn no XP.
func (a *App) AdvanceStage(ctx context.Context, id string, now time.Time) (capsule.Capsule, error) {
	c, err := a.capsules.Get(ctx, id)
	if err != nil {
		return capsule.Capsule{}, err
	}
	c = c.WithStageAdvance(now)
	if err := a.capsules.Save(ctx, c); err != nil {
		return capsule.Capsule{}, err
	}
	return c, nil
}

// JoinGroup credits the join_group action.
func (a *App) JoinGroup(ctx context.Context, now time.Time) (progression.Result, error) {
	return a.applyAction(ctx, progression.Event{Action: progression.ActionJoinGroup}, "", now)
}

// CompleteChallenge credits the challenge action.
func (a *App) CompleteChallenge(ctx context.Context, now time.Time) (progression.Result, error) {
	return a.applyAction(ctx, progression.Event{Action: progression.ActionChallenge}, "", now)
}

// Due returns the capsules due for review at now, weakest retention first.
func (a *App) Due(ctx context.Context, now time.Time) ([]capsule.Capsule, error) {
	all, err := a.capsules.List(ctx)
	if err != nil {
		return nil, err
	}
	var due []capsule.Capsule
	for _, c := range all {
		if a.scheduler.IsDue(c, now) {
			due = append(due, c)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return a.scheduler.Retention(due[i], now) < a.scheduler.Retention(due[j], now)
	})
	return due, nil
}

// Schedule returns the review timeline for one capsule.
func (a *App) Schedule(ctx context.Context, id string, now time.Time) ([]spacedrep.Entry, error) {
	c, err := a.capsules.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.scheduler.Schedule(c, now), nil
}

// Stats is the aggregate view the stats command renders.
type Stats struct {
	Performance   spacedrep.GlobalPerformance
	State         progression.State
	Level         int
	LevelProgress float64
	CapsuleCount  int
	ActionCounts  map[string]int
}

// Stats aggregates scheduling health and progression state.
func (a *App) Stats(ctx context.Context, now time.Time) (Stats, error) {
	all, err := a.capsules.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	state, err := a.profile.Load(ctx)
	if err != nil {
		return Stats{}, err
	}
	counts, err := a.events.CountByAction(ctx)
	if err != nil {
		return Stats{}, err
	}

	cfg := a.engine.Config()
	return Stats{
		Performance:   a.scheduler.Performance(all, now),
		State:         state,
		Level:         cfg.Level(state.XP),
		LevelProgress: cfg.LevelProgress(state.XP),
		CapsuleCount:  len(all),
		ActionCounts:  counts,
	}, nil
}

// Capsules exposes the capsule repository for listing and deletion.
func (a *App) Capsules() store.CapsuleRepo {
	return a.capsules
}

// Profile loads the learner's current gamification state.
func (a *App) Profile(ctx context.Context) (progression.State, error) {
	return a.profile.Load(ctx)
}

// RecentEvents returns the latest study events, most recent first.
func (a *App) RecentEvents(ctx context.Context, limit int) ([]store.StudyEvent, error) {
	return a.events.Recent(ctx, limit)
}

// applyAction runs one study action through the progression engine,
// persists the returned state, and appends a study event.
func (a *App) applyAction(ctx context.Context, ev progression.Event, capsuleID string, now time.Time) (progression.Result, error) {
	if ev.CapsuleCount == 0 {
		count, err := a.capsules.Count(ctx)
		if err != nil {
			return progression.Result{}, err
		}
		ev.CapsuleCount = count
	}

	state, err := a.profile.Load(ctx)
	if err != nil {
		return progression.Result{}, err
	}

	res := a.engine.Process(state, ev, now)
	if err := a.profile.Save(ctx, res.State); err != nil {
		return progression.Result{}, err
	}

	err = a.events.Append(ctx, store.StudyEvent{
		Action:    string(ev.Action),
		Score:     ev.Score,
		XPAwarded: res.State.XP - state.XP,
		CapsuleID: capsuleID,
		Timestamp: now,
	})
	if err != nil {
		return progression.Result{}, err
	}
	return res, nil
}
