// Package session implements the phase state machine that drives one
// play-through from setup to results. All mutation goes through action
// methods, each validated against the current phase before any state
// changes. Timer expiry is the only autonomous phase advancement.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/imposterpurge/engine/internal/content"
	"github.com/imposterpurge/engine/internal/game"
	"github.com/imposterpurge/engine/internal/models"
	"github.com/imposterpurge/engine/internal/store"
)

var (
	// ErrInvalidAction rejects an action that is not legal in the
	// current phase.
	ErrInvalidAction = errors.New("action not legal in current phase")
	// ErrConfig blocks session start on bad setup input.
	ErrConfig = errors.New("configuration error")
)

// SetupConfig is everything the engine needs to start a mission.
type SetupConfig struct {
	PlayerCount     int
	PlayerNames     []string
	ImposterCount   int
	Distribution    models.RoleDistributionMode
	Custom          models.CustomRoleConfig
	EnabledSpecials []models.Role
	MainMode        models.MainMode
	Category        models.GameCategory
	GameMode        models.GameMode
	IncludeHints    bool
	IncludeTaboo    bool
	UseAIMissions   bool
	IsAuctionActive bool
	IsBlindBidding  bool
}

// EventKind labels the engine's change notifications.
type EventKind string

const (
	EventPhase  EventKind = "phase"
	EventTick   EventKind = "tick"
	EventNotice EventKind = "notice"
)

// Event is pushed to the presentation layer on every change.
type Event struct {
	Kind      EventKind       `json:"kind"`
	Phase     models.Phase    `json:"phase"`
	Remaining int             `json:"remaining,omitempty"`
	Notice    *content.Notice `json:"notice,omitempty"`
}

// Engine is the session controller. It owns the single active
// play-through; players and context are created at StartMission and
// destroyed at Reset.
type Engine struct {
	mu sync.Mutex

	builder  *content.Builder
	resolver *game.Resolver
	store    store.Store
	rng      game.Source

	settings models.Settings

	phase     models.Phase
	prevPhase models.Phase // where a side screen returns to

	cfg      SetupConfig
	players  []*models.Player
	gameCtx  *models.GameContext
	current  int
	outcome  *game.Outcome
	pending  *game.Outcome
	scored   bool
	notices  []content.Notice

	eliminated       *models.Player
	lastStandOptions []string
	purgeGrid        []string

	inquestRound    int
	virusDetections int

	timerGen       int
	timerRemaining int
	autoTimer      bool

	listener func(Event)
	events   chan Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithoutAutoTimer disables the background countdown goroutine; tests
// drive the clock with Tick.
func WithoutAutoTimer() Option {
	return func(e *Engine) { e.autoTimer = false }
}

// WithRand replaces the random source.
func WithRand(rng game.Source) Option {
	return func(e *Engine) { e.rng = rng }
}

// NewEngine wires the state machine to its collaborators. Settings are
// read from the store; a failed read falls back to defaults.
func NewEngine(builder *content.Builder, resolver *game.Resolver, st store.Store, opts ...Option) *Engine {
	e := &Engine{
		builder:   builder,
		resolver:  resolver,
		store:     st,
		rng:       game.NewSource(0),
		phase:     models.PhaseHome,
		prevPhase: models.PhaseHome,
		autoTimer: true,
		settings:  models.DefaultSettings(),
		events:    make(chan Event, 64),
	}
	go e.deliver()
	for _, opt := range opts {
		opt(e)
	}
	if st != nil {
		var saved models.Settings
		if ok, err := st.Get(store.KeySettings, &saved); err != nil {
			log.Printf("settings read failed, using defaults: %v", err)
		} else if ok {
			e.settings = saved.Normalize()
		}
	}
	return e
}

// SetListener registers the presentation callback. Events fire outside
// the engine lock.
func (e *Engine) SetListener(fn func(Event)) {
	e.mu.Lock()
	e.listener = fn
	e.mu.Unlock()
}

// emit queues an event for the listener. A single delivery goroutine
// drains the queue so events arrive in the order they were emitted; a
// full queue drops the event rather than stall a phase transition.
func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}

func (e *Engine) deliver() {
	for ev := range e.events {
		e.mu.Lock()
		fn := e.listener
		e.mu.Unlock()
		if fn != nil {
			fn(ev)
		}
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() models.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// Settings returns the active preferences.
func (e *Engine) Settings() models.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// UpdateSettings persists new preferences; a storage failure keeps the
// in-memory value and is non-fatal.
func (e *Engine) UpdateSettings(s models.Settings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = s.Normalize()
	if e.store != nil {
		if err := e.store.Set(store.KeySettings, e.settings); err != nil {
			log.Printf("settings write failed: %v", err)
		}
	}
}

// transition moves to the target phase, cancelling any armed timer.
// Illegal targets abort to HOME: a bad transition is an engine bug and
// must not corrupt scoring.
func (e *Engine) transition(target models.Phase) {
	if !e.phase.CanTransitionTo(target) {
		log.Printf("illegal transition %s -> %s, aborting to HOME", e.phase, target)
		e.clearSession()
		e.phase = models.PhaseHome
		e.emit(Event{Kind: EventPhase, Phase: e.phase})
		return
	}
	e.timerGen++ // cancels the previous countdown
	e.timerRemaining = 0
	e.phase = target
	e.emit(Event{Kind: EventPhase, Phase: target})
}

func (e *Engine) clearSession() {
	e.timerGen++
	e.timerRemaining = 0
	e.players = nil
	e.gameCtx = nil
	e.current = 0
	e.outcome = nil
	e.pending = nil
	e.scored = false
	e.eliminated = nil
	e.lastStandOptions = nil
	e.purgeGrid = nil
	e.inquestRound = 0
	e.virusDetections = 0
}

// OpenSetup moves from the home screen into setup.
func (e *Engine) OpenSetup() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != models.PhaseHome {
		return fmt.Errorf("%w: %s", ErrInvalidAction, e.phase)
	}
	e.transition(models.PhaseSetup)
	return nil
}

// Navigate enters an informational side screen, remembering where to
// return.
func (e *Engine) Navigate(target models.Phase) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch target {
	case models.PhaseSettings, models.PhaseLeaderboard, models.PhaseHelp:
	default:
		return fmt.Errorf("%w: navigate to %s", ErrInvalidAction, target)
	}
	if !e.phase.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidAction, e.phase, target)
	}
	e.prevPhase = e.phase
	e.phase = target
	e.emit(Event{Kind: EventPhase, Phase: target})
	return nil
}

// Back leaves a side screen.
func (e *Engine) Back() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.phase {
	case models.PhaseSettings, models.PhaseLeaderboard, models.PhaseHelp:
	default:
		return fmt.Errorf("%w: back from %s", ErrInvalidAction, e.phase)
	}
	target := e.prevPhase
	if target == models.PhaseResults || !e.phase.CanTransitionTo(target) {
		target = models.PhaseHome
	}
	if target == models.PhaseHome && e.prevPhase == models.PhaseResults {
		e.clearSession()
	}
	e.phase = target
	e.emit(Event{Kind: EventPhase, Phase: target})
	return nil
}

// validateSetup checks the configuration errors that block start.
func validateSetup(cfg SetupConfig) error {
	if cfg.PlayerCount < game.MinPlayers || cfg.PlayerCount > game.MaxPlayers {
		return fmt.Errorf("%w: player count %d outside [%d,%d]", ErrConfig, cfg.PlayerCount, game.MinPlayers, game.MaxPlayers)
	}
	if len(cfg.PlayerNames) < cfg.PlayerCount {
		return fmt.Errorf("%w: %d names for %d players", ErrConfig, len(cfg.PlayerNames), cfg.PlayerCount)
	}
	seen := make(map[string]bool, cfg.PlayerCount)
	for _, name := range cfg.PlayerNames[:cfg.PlayerCount] {
		if err := game.ValidateName(name); err != nil {
			return fmt.Errorf("%w: %v", ErrConfig, err)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate name %q", ErrConfig, name)
		}
		seen[name] = true
	}
	return nil
}

// StartMission builds the session: mission context, shuffled roles and
// per-player secrets. Provider failures surface as notices and never
// block the start; configuration errors do.
func (e *Engine) StartMission(ctx context.Context, cfg SetupConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != models.PhaseSetup {
		return fmt.Errorf("%w: start from %s", ErrInvalidAction, e.phase)
	}
	if err := validateSetup(cfg); err != nil {
		return err
	}
	names := cfg.PlayerNames[:cfg.PlayerCount]

	gameCtx, notices, err := e.builder.Build(ctx, content.BuildConfig{
		MainMode:        cfg.MainMode,
		Category:        cfg.Category,
		PlayerNames:     names,
		IncludeHints:    cfg.IncludeHints,
		IncludeTaboo:    cfg.IncludeTaboo,
		UseAIMissions:   cfg.UseAIMissions,
		IsAuctionActive: cfg.IsAuctionActive,
		IsBlindBidding:  cfg.IsBlindBidding,
	})
	for _, n := range notices {
		e.pushNotice(n)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}

	credits := e.resolver.Credits()

	var players []*models.Player
	if gameCtx.MainMode == models.ModeVirusPurge {
		roles := make([]models.Role, cfg.PlayerCount)
		for i := range roles {
			roles[i] = models.RoleNeighbor
		}
		players, err = game.BuildPlayers(names, roles, gameCtx, credits, e.rng)
	} else {
		var roles []models.Role
		roles, err = game.AssignRoles(game.RoleSetup{
			PlayerCount:     cfg.PlayerCount,
			ImposterCount:   cfg.ImposterCount,
			Distribution:    cfg.Distribution,
			EnabledSpecials: cfg.EnabledSpecials,
			Custom:          cfg.Custom,
		}, e.rng)
		if err == nil {
			evil := 0
			for _, r := range roles {
				if r.EvilAligned() {
					evil++
				}
			}
			gameCtx.EvilTeamCount = evil
			players, err = game.BuildPlayers(names, roles, gameCtx, credits, e.rng)
		}
	}
	if err != nil {
		// Invariant violation: abort to a safe state, ledger untouched.
		log.Printf("role assignment failed, aborting: %v", err)
		e.clearSession()
		e.phase = models.PhaseHome
		return err
	}

	e.cfg = cfg
	e.players = players
	e.gameCtx = gameCtx
	if gameCtx.MainMode == models.ModeVirusPurge {
		grid := append([]string{gameCtx.VirusWord}, gameCtx.NoiseWords...)
		e.rng.Shuffle(len(grid), func(i, j int) { grid[i], grid[j] = grid[j], grid[i] })
		e.purgeGrid = grid
	}
	e.current = 0
	e.virusDetections = 0
	e.inquestRound = 0
	e.scored = false

	if gameCtx.MainMode != models.ModeVirusPurge && cfg.IsAuctionActive {
		e.transition(models.PhaseAuctionReveal)
	} else {
		e.transition(models.PhaseRevealTransition)
	}
	return nil
}

// Reset tears the session down and returns home. Legal from any phase;
// the header's home button is always live.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clearSession()
	e.phase = models.PhaseHome
	e.prevPhase = models.PhaseHome
	e.emit(Event{Kind: EventPhase, Phase: e.phase})
}

// pushNotice records a toast-style message and notifies the listener.
func (e *Engine) pushNotice(n content.Notice) {
	e.notices = append(e.notices, n)
	e.emit(Event{Kind: EventNotice, Phase: e.phase, Notice: &n})
}

// DrainNotices hands pending notices to the presentation layer.
func (e *Engine) DrainNotices() []content.Notice {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.notices
	e.notices = nil
	return out
}

// finish commits the outcome and enters RESULTS. Scoring runs exactly
// once per session; a second call with the session already terminal is
// a no-op on the ledger.
func (e *Engine) finish(out game.Outcome) {
	if !e.scored {
		e.resolver.Commit(e.players, e.gameCtx.MainMode, e.gameCtx.IncludeHints, out)
		e.scored = true
	}
	e.outcome = &out
	e.transition(models.PhaseResults)
}

// Outcome returns the final result once the session is terminal.
func (e *Engine) Outcome() (game.Outcome, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.outcome == nil {
		return game.Outcome{}, false
	}
	return *e.outcome, true
}
