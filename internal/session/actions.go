package session

import (
	"fmt"
	"strings"

	"github.com/imposterpurge/engine/internal/game"
	"github.com/imposterpurge/engine/internal/models"
)

func (e *Engine) requirePhase(want ...models.Phase) error {
	for _, p := range want {
		if e.phase == p {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidAction, e.phase)
}

func (e *Engine) currentPlayer() *models.Player {
	if e.current < 0 || e.current >= len(e.players) {
		return nil
	}
	return e.players[e.current]
}

func (e *Engine) findPlayer(id string) *models.Player {
	for _, p := range e.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (e *Engine) findRole(role models.Role) *models.Player {
	for _, p := range e.players {
		if p.Role == role {
			return p
		}
	}
	return nil
}

// BeginAuction leaves the power preview and hands the device to the
// first bidder.
func (e *Engine) BeginAuction() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseAuctionReveal); err != nil {
		return err
	}
	e.current = 0
	e.transition(models.PhaseAuctionTransition)
	return nil
}

// ConfirmPass acknowledges a device handoff screen. The phase decides
// what the holder sees next.
func (e *Engine) ConfirmPass() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.phase {
	case models.PhaseAuctionTransition:
		e.transition(models.PhaseAuctionBidding)
	case models.PhaseRevealTransition:
		e.transition(models.PhaseReveal)
	case models.PhaseInquestTransition:
		e.transition(models.PhaseInquestSelection)
	case models.PhaseInvestmentTransit:
		e.transition(models.PhaseInvestmentInput)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAction, e.phase)
	}
	return nil
}

// Bid is one player's sealed auction turn.
type Bid struct {
	Power  models.PowerUp
	Risk   models.RiskContract
	Amount int
}

// PlaceBid records the current bidder's purchase and moves the device
// on. Credits never go negative.
func (e *Engine) PlaceBid(bid Bid) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseAuctionBidding); err != nil {
		return err
	}
	p := e.currentPlayer()
	if p == nil {
		return fmt.Errorf("%w: no bidder", ErrInvalidAction)
	}
	if bid.Amount < 0 || bid.Amount > p.Credits {
		return fmt.Errorf("%w: bid %d with %d credits", ErrInvalidAction, bid.Amount, p.Credits)
	}
	if bid.Power != "" {
		offered := false
		for _, pw := range e.gameCtx.AvailablePowers {
			if pw == bid.Power {
				offered = true
				break
			}
		}
		if !offered {
			return fmt.Errorf("%w: power %s not on offer", ErrInvalidAction, bid.Power)
		}
	}
	p.BidAmount = bid.Amount
	p.Credits -= bid.Amount
	if bid.Power != "" {
		p.ActivePower = bid.Power
	}
	if bid.Risk != "" {
		p.ActiveRisk = bid.Risk
	}
	e.current++
	if e.current < len(e.players) {
		e.transition(models.PhaseAuctionTransition)
	} else {
		e.current = 0
		e.transition(models.PhaseRevealTransition)
	}
	return nil
}

// ConfirmReveal is the current player acknowledging their secret and
// passing the device. After the last player the starting player is
// announced.
func (e *Engine) ConfirmReveal() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseReveal); err != nil {
		return err
	}
	e.current++
	if e.current < len(e.players) {
		e.transition(models.PhaseRevealTransition)
	} else {
		e.transition(models.PhaseStartingPlayer)
	}
	return nil
}

// OpenComms leaves the starting-player announcement for the mode's
// discussion flow.
func (e *Engine) OpenComms() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseStartingPlayer); err != nil {
		return err
	}
	switch e.gameCtx.MainMode {
	case models.ModeInquest:
		e.inquestRound = 0
		e.transition(models.PhaseInquestQuestion)
	case models.ModeInvestment:
		e.current = 0
		e.transition(models.PhaseInvestmentInput)
	default:
		e.startMeeting()
	}
	return nil
}

func (e *Engine) startMeeting() {
	e.transition(models.PhaseMeeting)
	e.armTimer(e.settings.MeetingDurationSec)
}

// SkipMeeting ends discussion early. PvE sessions go straight to the
// purge guess, versus sessions to the vote.
func (e *Engine) SkipMeeting() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseMeeting); err != nil {
		return err
	}
	e.endMeeting()
	return nil
}

func (e *Engine) endMeeting() {
	if e.gameCtx.MainMode == models.ModeVirusPurge {
		e.transition(models.PhaseVirusGuess)
	} else {
		e.transition(models.PhaseVoting)
	}
}

// ReportDetection ticks the PvE suspicion counter. Hitting the cap ends
// the session immediately with a virus win.
func (e *Engine) ReportDetection() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseMeeting); err != nil {
		return err
	}
	if e.gameCtx.MainMode != models.ModeVirusPurge {
		return fmt.Errorf("%w: detections are a purge mechanic", ErrInvalidAction)
	}
	e.virusDetections++
	if e.virusDetections >= game.DetectionCap {
		e.finish(game.ResolveDetectionBreach())
		return nil
	}
	e.emit(Event{Kind: EventPhase, Phase: e.phase})
	return nil
}

// DetectionCount reports the current PvE suspicion total.
func (e *Engine) DetectionCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.virusDetections
}

// CastBallot resolves the group vote. The ballot must name exactly as
// many suspects as there are evil-aligned players (minimum one).
func (e *Engine) CastBallot(ids []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseVoting); err != nil {
		return err
	}
	want := e.gameCtx.EvilTeamCount
	if want < 1 {
		want = 1
	}
	if len(ids) != want {
		return fmt.Errorf("%w: ballot names %d suspects, need %d", ErrInvalidAction, len(ids), want)
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("%w: duplicate suspect on ballot", ErrInvalidAction)
		}
		seen[id] = true
		if e.findPlayer(id) == nil {
			return fmt.Errorf("%w: %v", ErrInvalidAction, game.ErrBallotTarget)
		}
	}
	verdict, err := game.EvaluateBallot(e.players, ids)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	switch verdict.Next {
	case game.StepResults:
		e.finish(*verdict.Outcome)
	case game.StepLastStand:
		e.eliminated = verdict.Eliminated
		e.pending = verdict.Pending
		e.prepareLastStand()
		e.transition(models.PhaseLastStand)
		e.armTimer(e.settings.LastStandDurationSec)
	case game.StepMimicGuess:
		e.eliminated = verdict.Eliminated
		e.pending = verdict.Pending
		e.transition(models.PhaseMimicGuess)
	}
	return nil
}

// prepareLastStand shuffles the real project in with its distractors so
// the accused faces a stable option list.
func (e *Engine) prepareLastStand() {
	opts := []string{e.gameCtx.RealProject}
	opts = append(opts, e.gameCtx.Distractors...)
	e.rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	e.lastStandOptions = opts
}

// SubmitLastStandProject is the accused guessing the real project.
func (e *Engine) SubmitLastStandProject(guess string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseLastStand); err != nil {
		return err
	}
	correct := game.CorrectProjectGuess(guess, e.gameCtx.RealProject)
	e.finish(game.ResolveLastStand(e.eliminated, game.GuessProject, correct, e.pendingOrNeighbors()))
	return nil
}

// SubmitLastStandOracle is the accused hunting the Oracle instead. Only
// legal when an Oracle is in play.
func (e *Engine) SubmitLastStandOracle(targetID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseLastStand); err != nil {
		return err
	}
	if !e.gameCtx.HasOracleActive {
		return fmt.Errorf("%w: no oracle in play", ErrInvalidAction)
	}
	target := e.findPlayer(targetID)
	if target == nil {
		return fmt.Errorf("%w: unknown target", ErrInvalidAction)
	}
	correct := target.Role == models.RoleOracle
	e.finish(game.ResolveLastStand(e.eliminated, game.GuessOracle, correct, e.pendingOrNeighbors()))
	return nil
}

func (e *Engine) pendingOrNeighbors() game.Outcome {
	if e.pending != nil {
		return *e.pending
	}
	return game.Outcome{Winner: models.WinnerNeighbors, Reason: "All imposters identified. Threat eliminated."}
}

// SubmitMimicGuess is the surviving Mimic naming an imposter and the
// real project to steal the win.
func (e *Engine) SubmitMimicGuess(targetID, wordGuess string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseMimicGuess); err != nil {
		return err
	}
	mimic := e.findRole(models.RoleMimic)
	if mimic == nil {
		return fmt.Errorf("%w: no mimic in play", ErrInvalidAction)
	}
	target := e.findPlayer(targetID)
	if target == nil {
		return fmt.Errorf("%w: unknown target", ErrInvalidAction)
	}
	correct := target.Role.EvilAligned() && game.CorrectProjectGuess(wordGuess, e.gameCtx.RealProject)
	e.finish(game.ResolveMimicGuess(mimic, correct, e.pendingOrNeighbors()))
	return nil
}

// SubmitVirusGuess is the table's single attempt to name the virus word.
func (e *Engine) SubmitVirusGuess(word string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseVirusGuess); err != nil {
		return err
	}
	correct := game.CorrectProjectGuess(word, e.gameCtx.VirusWord)
	e.finish(game.ResolveVirusGuess(correct, e.gameCtx.VirusWord))
	return nil
}

// AdvanceInquest leaves the question card or the round reveal. After
// the final round the table proceeds to the vote.
func (e *Engine) AdvanceInquest() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.phase {
	case models.PhaseInquestQuestion:
		e.current = 0
		e.transition(models.PhaseInquestTransition)
	case models.PhaseInquestReveal:
		e.inquestRound++
		if e.inquestRound < game.InquestRounds && e.inquestRound < len(e.gameCtx.InquestQuestions) {
			e.transition(models.PhaseInquestQuestion)
		} else {
			e.transition(models.PhaseVoting)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAction, e.phase)
	}
	return nil
}

// SubmitInquestAnswer records the current player's pick for this round
// and moves the device on.
func (e *Engine) SubmitInquestAnswer(option string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseInquestSelection); err != nil {
		return err
	}
	if e.inquestRound >= len(e.gameCtx.InquestQuestions) {
		return fmt.Errorf("%w: no question active", ErrInvalidAction)
	}
	valid := false
	for _, opt := range e.gameCtx.InquestOptions {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(option)) {
			option = opt
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: option not on the card", ErrInvalidAction)
	}
	p := e.currentPlayer()
	if p == nil {
		return fmt.Errorf("%w: no player selecting", ErrInvalidAction)
	}
	p.InquestAnswers = append(p.InquestAnswers, option)
	e.current++
	if e.current < len(e.players) {
		e.transition(models.PhaseInquestTransition)
	} else {
		e.transition(models.PhaseInquestReveal)
	}
	return nil
}

// SubmitInvestment records the current player's budget split and moves
// the device on. The spend may not exceed the round budget.
func (e *Engine) SubmitInvestment(spend models.InvestmentSpend) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseInvestmentInput); err != nil {
		return err
	}
	for cat, amount := range spend {
		if amount < 0 {
			return fmt.Errorf("%w: negative spend on %s", ErrInvalidAction, cat)
		}
	}
	if spend.Total() > game.InvestmentBudget {
		return fmt.Errorf("%w: spend %d exceeds budget %d", ErrInvalidAction, spend.Total(), game.InvestmentBudget)
	}
	p := e.currentPlayer()
	if p == nil {
		return fmt.Errorf("%w: no player investing", ErrInvalidAction)
	}
	p.InvestmentSpend = spend
	e.current++
	if e.current < len(e.players) {
		e.transition(models.PhaseInvestmentTransit)
	} else {
		e.transition(models.PhaseInvestmentReveal)
	}
	return nil
}

// FinishInvestmentReveal moves from the spend comparison into open
// discussion.
func (e *Engine) FinishInvestmentReveal() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requirePhase(models.PhaseInvestmentReveal); err != nil {
		return err
	}
	e.startMeeting()
	return nil
}
