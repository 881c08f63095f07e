package session

import (
	"time"

	"github.com/imposterpurge/engine/internal/game"
	"github.com/imposterpurge/engine/internal/models"
)

// armTimer starts the countdown for the current phase. At most one
// logical timer exists: arming bumps the generation, which orphans any
// goroutine still ticking for a previous phase.
func (e *Engine) armTimer(seconds int) {
	e.timerGen++
	e.timerRemaining = seconds
	if e.autoTimer {
		go e.run(e.timerGen)
	}
}

func (e *Engine) run(gen int) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		if !e.Tick(gen) {
			return
		}
	}
}

// Tick advances the countdown one second. It returns false once the
// generation is stale or the timer has fired, so callers stop driving
// it. Tests call this directly with the generation from TimerGen.
func (e *Engine) Tick(gen int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.timerGen || e.timerRemaining <= 0 {
		return false
	}
	e.timerRemaining--
	e.emit(Event{Kind: EventTick, Phase: e.phase, Remaining: e.timerRemaining})
	if e.timerRemaining > 0 {
		return true
	}
	e.timerExpired()
	return false
}

// TimerGen exposes the current generation for test-driven ticking.
func (e *Engine) TimerGen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timerGen
}

// TimerRemaining reports the seconds left on the active countdown.
func (e *Engine) TimerRemaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timerRemaining
}

// timerExpired applies the phase's timeout rule. Called with the lock
// held.
func (e *Engine) timerExpired() {
	switch e.phase {
	case models.PhaseMeeting:
		e.endMeeting()
	case models.PhaseLastStand:
		e.finish(game.ResolveLastStand(e.eliminated, game.GuessTimeout, false, e.pendingOrNeighbors()))
	}
}
