package game

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/imposterpurge/engine/internal/models"
	"github.com/imposterpurge/engine/internal/store"
)

// Outcome is the final (or pending) result of a session.
type Outcome struct {
	Winner models.Winner
	Reason string
}

// NextStep tells the state machine where a ballot evaluation leads.
type NextStep int

const (
	StepResults NextStep = iota
	StepLastStand
	StepMimicGuess
)

// VoteVerdict is the full evaluation of a voting ballot.
type VoteVerdict struct {
	Next       NextStep
	Outcome    *Outcome       // final outcome, StepResults only
	Pending    *Outcome       // revocable neighbor win carried into LAST_STAND / MIMIC_GUESS
	Eliminated *models.Player // the player taking the last stand
}

// ErrBallotTarget rejects a ballot naming an unknown player.
var ErrBallotTarget = fmt.Errorf("ballot names unknown player")

// EvaluateBallot applies the voting routing rules to the selected
// suspects. The ballot has already been size-checked by the session.
func EvaluateBallot(players []*models.Player, ballotIDs []string) (VoteVerdict, error) {
	byID := make(map[string]*models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	selected := make([]*models.Player, 0, len(ballotIDs))
	onBallot := make(map[string]bool, len(ballotIDs))
	for _, id := range ballotIDs {
		p, ok := byID[id]
		if !ok {
			return VoteVerdict{}, fmt.Errorf("%w: %s", ErrBallotTarget, id)
		}
		selected = append(selected, p)
		onBallot[p.ID] = true
	}

	// Rogue roles on the ballot short-circuit everything else.
	for _, p := range selected {
		if p.Role == models.RoleAnarchist {
			return VoteVerdict{Next: StepResults, Outcome: &Outcome{
				Winner: models.WinnerAnarchist,
				Reason: fmt.Sprintf("%s was the Anarchist! Rogue victory.", p.Name),
			}}, nil
		}
	}
	for _, p := range selected {
		if p.Role == models.RoleMimic {
			return VoteVerdict{Next: StepResults, Outcome: &Outcome{
				Winner: models.WinnerNeighbors,
				Reason: fmt.Sprintf("The Mimic (%s) was caught! Neighbors win.", p.Name),
			}}, nil
		}
	}

	// A bounty hunter may prove their identity in a last stand.
	for _, p := range selected {
		if p.Role == models.RoleBountyHunter {
			return VoteVerdict{Next: StepLastStand, Eliminated: p, Pending: &Outcome{
				Winner: models.WinnerImposters,
				Reason: fmt.Sprintf("Neighbors voted out %s (Bounty Hunter) and they failed to prove identity.", p.Name),
			}}, nil
		}
	}

	// Any remaining innocent on the ballot hands the win to the imposters.
	for _, p := range selected {
		if !p.Role.EvilAligned() {
			return VoteVerdict{Next: StepResults, Outcome: &Outcome{
				Winner: models.WinnerImposters,
				Reason: fmt.Sprintf("Eliminated %s (Innocent). Surveillance failure.", p.Name),
			}}, nil
		}
	}

	// Ballot is all evil-aligned; exact match means every evil player
	// was named, partial identification pays the imposters.
	for _, p := range players {
		if p.Role.EvilAligned() && !onBallot[p.ID] {
			return VoteVerdict{Next: StepResults, Outcome: &Outcome{
				Winner: models.WinnerImposters,
				Reason: "Not every infiltrator was identified. The network survives.",
			}}, nil
		}
	}

	pending := &Outcome{
		Winner: models.WinnerNeighbors,
		Reason: "All imposters identified. Threat eliminated.",
	}
	caught := firstEliminated(selected)

	for _, p := range players {
		if p.Role == models.RoleMimic && !onBallot[p.ID] {
			return VoteVerdict{Next: StepMimicGuess, Pending: pending, Eliminated: caught}, nil
		}
	}
	return VoteVerdict{Next: StepLastStand, Pending: pending, Eliminated: caught}, nil
}

func firstEliminated(selected []*models.Player) *models.Player {
	for _, p := range selected {
		if p.Role == models.RoleImposter {
			return p
		}
	}
	if len(selected) > 0 {
		return selected[0]
	}
	return nil
}

// CorrectProjectGuess compares a free-text guess against the real
// secret, case-insensitively and ignoring surrounding whitespace.
func CorrectProjectGuess(guess, real string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(real))
}

// LastStandGuess identifies what the eliminated player attempted.
type LastStandGuess int

const (
	GuessProject LastStandGuess = iota
	GuessOracle
	GuessTimeout
)

// ResolveLastStand turns a last-stand attempt into the final outcome.
// A correct guess reverses the pending result; timeout and wrong
// guesses confirm it. The bounty hunter plays the stand in reverse: a
// correct project guess proves innocence and saves the neighbor win.
func ResolveLastStand(eliminated *models.Player, guess LastStandGuess, correct bool, pending Outcome) Outcome {
	if eliminated.Role == models.RoleBountyHunter {
		if guess == GuessProject && correct {
			return Outcome{
				Winner: models.WinnerNeighbors,
				Reason: fmt.Sprintf("%s (Bounty Hunter) proved their innocence by stating the word! Neighbors Win.", eliminated.Name),
			}
		}
		return pending
	}

	if correct {
		switch guess {
		case GuessProject:
			return Outcome{
				Winner: models.WinnerImposters,
				Reason: fmt.Sprintf("%s guessed the project! Security compromised.", eliminated.Name),
			}
		case GuessOracle:
			return Outcome{
				Winner: models.WinnerImposters,
				Reason: fmt.Sprintf("%s identified the Oracle! Network exposed.", eliminated.Name),
			}
		}
	}
	return Outcome{
		Winner: models.WinnerNeighbors,
		Reason: fmt.Sprintf("%s failed to intercept intel. Neighbors Secure.", eliminated.Name),
	}
}

// ResolveMimicGuess commits or revokes a pending neighbor win. The
// mimic must name an imposter and the real secret; both correct steals
// the win.
func ResolveMimicGuess(mimic *models.Player, correct bool, pending Outcome) Outcome {
	if correct {
		return Outcome{
			Winner: models.WinnerMimic,
			Reason: fmt.Sprintf("%s mimicked the truth and stole the win!", mimic.Name),
		}
	}
	return pending
}

// ResolveVirusGuess ends a co-op session on the final word guess.
func ResolveVirusGuess(correct bool, virusWord string) Outcome {
	if correct {
		return Outcome{
			Winner: models.WinnerHumans,
			Reason: fmt.Sprintf("Purge Successful! Identified: %s", virusWord),
		}
	}
	return Outcome{
		Winner: models.WinnerVirus,
		Reason: fmt.Sprintf("Failed Guess. Virus was: %s", virusWord),
	}
}

// ResolveDetectionBreach ends a co-op session that hit the detection cap.
func ResolveDetectionBreach() Outcome {
	return Outcome{
		Winner: models.WinnerVirus,
		Reason: fmt.Sprintf("System Breach! %d Detection Points reached.", DetectionCap),
	}
}

// PlayerWon checks a player's role against the winning side.
func PlayerWon(role models.Role, winner models.Winner) bool {
	switch winner {
	case models.WinnerNeighbors:
		return role.Team() == models.TeamGood
	case models.WinnerImposters:
		return role.Team() == models.TeamEvil
	case models.WinnerAnarchist:
		return role == models.RoleAnarchist
	case models.WinnerMimic:
		return role == models.RoleMimic
	case models.WinnerHumans:
		return true
	default: // the virus is the house; nobody collects
		return false
	}
}

// Resolver persists the outcome of a finished session: points, risk
// contract credits and the capped history log. The session guarantees
// Commit runs at most once per play-through.
type Resolver struct {
	store store.Store
	now   func() time.Time
}

// NewResolver wires the resolver to a store.
func NewResolver(st store.Store) *Resolver {
	return &Resolver{store: st, now: time.Now}
}

// Commit awards points and credits for the outcome and appends the
// history entry. Store failures are logged and swallowed; a broken
// ledger must not corrupt the finished session.
func (r *Resolver) Commit(players []*models.Player, mode models.MainMode, includeHints bool, out Outcome) {
	points := map[string]int{}
	if _, err := r.store.Get(store.KeyPoints, &points); err != nil {
		log.Printf("score ledger read failed, starting fresh: %v", err)
		points = map[string]int{}
	}
	credits := map[string]int{}
	if _, err := r.store.Get(store.KeyCredits, &credits); err != nil {
		log.Printf("credit ledger read failed, starting fresh: %v", err)
		credits = map[string]int{}
	}

	entry := models.HistoryEntry{
		ID:     uuid.New().String(),
		Date:   r.now().Format("2006-01-02 15:04:05"),
		Winner: out.Winner,
		Reason: out.Reason,
		Mode:   mode,
	}

	for _, p := range players {
		entry.Roster = append(entry.Roster, models.RosterEntry{Name: p.Name, Role: p.Role})
		// Seed first-time names so contract bonuses stack on the
		// starting budget instead of replacing it.
		if _, ok := credits[p.Name]; !ok {
			credits[p.Name] = StartingCredits
		}
		if !PlayerWon(p.Role, out.Winner) {
			continue
		}
		score := BaseWinPoints
		if p.Role == models.RoleImposter && !includeHints && out.Winner == models.WinnerImposters {
			score = BlindImposterWinPoints
		}
		points[p.Name] += score
		if bonus := p.ActiveRisk.CreditBonus(); bonus > 0 {
			credits[p.Name] += bonus
		}
	}

	var history []models.HistoryEntry
	if _, err := r.store.Get(store.KeyHistory, &history); err != nil {
		log.Printf("history read failed, starting fresh: %v", err)
		history = nil
	}
	history = append([]models.HistoryEntry{entry}, history...)
	if len(history) > models.MaxHistoryEntries {
		history = history[:models.MaxHistoryEntries]
	}

	if err := r.store.Set(store.KeyPoints, points); err != nil {
		log.Printf("score ledger write failed: %v", err)
	}
	if err := r.store.Set(store.KeyCredits, credits); err != nil {
		log.Printf("credit ledger write failed: %v", err)
	}
	if err := r.store.Set(store.KeyHistory, history); err != nil {
		log.Printf("history write failed: %v", err)
	}
}

// Points reads the persistent score ledger; a read failure yields an
// empty ledger.
func (r *Resolver) Points() map[string]int {
	points := map[string]int{}
	if _, err := r.store.Get(store.KeyPoints, &points); err != nil {
		log.Printf("score ledger read failed: %v", err)
		return map[string]int{}
	}
	return points
}

// Credits reads the persistent credit balances.
func (r *Resolver) Credits() map[string]int {
	credits := map[string]int{}
	if _, err := r.store.Get(store.KeyCredits, &credits); err != nil {
		log.Printf("credit ledger read failed: %v", err)
		return map[string]int{}
	}
	return credits
}

// History reads the capped session history, newest first.
func (r *Resolver) History() []models.HistoryEntry {
	var history []models.HistoryEntry
	if _, err := r.store.Get(store.KeyHistory, &history); err != nil {
		log.Printf("history read failed: %v", err)
		return nil
	}
	return history
}

// ClearStats wipes the score ledger, credits and history.
func (r *Resolver) ClearStats() {
	for _, key := range []string{store.KeyPoints, store.KeyCredits, store.KeyHistory} {
		if err := r.store.Remove(key); err != nil {
			log.Printf("clear %s failed: %v", key, err)
		}
	}
}
