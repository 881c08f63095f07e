package game

import (
	"strings"
	"testing"
	"time"

	"github.com/imposterpurge/engine/internal/models"
	"github.com/imposterpurge/engine/internal/store"
)

func roster(roles ...models.Role) []*models.Player {
	names := []string{"Ana", "Ben", "Cleo", "Dev", "Eve", "Fox"}
	players := make([]*models.Player, len(roles))
	for i, r := range roles {
		players[i] = &models.Player{ID: names[i], Name: names[i], Role: r}
	}
	return players
}

func TestEvaluateBallotAnarchistWins(t *testing.T) {
	players := roster(models.RoleAnarchist, models.RoleImposter, models.RoleNeighbor)
	verdict, err := EvaluateBallot(players, []string{"Ana"})
	if err != nil {
		t.Fatalf("EvaluateBallot: %v", err)
	}
	if verdict.Next != StepResults || verdict.Outcome.Winner != models.WinnerAnarchist {
		t.Fatalf("verdict = %+v, want anarchist win", verdict)
	}
}

func TestEvaluateBallotAnarchistBeatsMimic(t *testing.T) {
	players := roster(models.RoleAnarchist, models.RoleMimic, models.RoleImposter)
	verdict, err := EvaluateBallot(players, []string{"Ben", "Ana"})
	if err != nil {
		t.Fatalf("EvaluateBallot: %v", err)
	}
	if verdict.Outcome == nil || verdict.Outcome.Winner != models.WinnerAnarchist {
		t.Fatalf("verdict = %+v, want anarchist priority over mimic", verdict)
	}
}

func TestEvaluateBallotMimicCaught(t *testing.T) {
	players := roster(models.RoleMimic, models.RoleImposter, models.RoleNeighbor)
	verdict, err := EvaluateBallot(players, []string{"Ana"})
	if err != nil {
		t.Fatalf("EvaluateBallot: %v", err)
	}
	if verdict.Next != StepResults || verdict.Outcome.Winner != models.WinnerNeighbors {
		t.Fatalf("verdict = %+v, want neighbor win for caught mimic", verdict)
	}
}

func TestEvaluateBallotInnocentEliminated(t *testing.T) {
	players := roster(models.RoleNeighbor, models.RoleImposter, models.RoleNeighbor)
	verdict, err := EvaluateBallot(players, []string{"Ana"})
	if err != nil {
		t.Fatalf("EvaluateBallot: %v", err)
	}
	if verdict.Next != StepResults || verdict.Outcome.Winner != models.WinnerImposters {
		t.Fatalf("verdict = %+v, want imposter win", verdict)
	}
}

func TestEvaluateBallotPartialIdentification(t *testing.T) {
	// Both named players are evil but a third infiltrator survives.
	players := roster(models.RoleImposter, models.RoleMrWhite, models.RoleImposter, models.RoleNeighbor)
	verdict, err := EvaluateBallot(players, []string{"Ana", "Ben"})
	if err != nil {
		t.Fatalf("EvaluateBallot: %v", err)
	}
	if verdict.Next != StepResults || verdict.Outcome.Winner != models.WinnerImposters {
		t.Fatalf("verdict = %+v, want imposter win on partial identification", verdict)
	}
}

func TestEvaluateBallotExactMatchPendsToLastStand(t *testing.T) {
	players := roster(models.RoleImposter, models.RoleMrWhite, models.RoleNeighbor, models.RoleNeighbor)
	verdict, err := EvaluateBallot(players, []string{"Ana", "Ben"})
	if err != nil {
		t.Fatalf("EvaluateBallot: %v", err)
	}
	if verdict.Next != StepLastStand {
		t.Fatalf("verdict.Next = %v, want last stand", verdict.Next)
	}
	if verdict.Pending == nil || verdict.Pending.Winner != models.WinnerNeighbors {
		t.Fatalf("pending = %+v, want revocable neighbor win", verdict.Pending)
	}
	if verdict.Eliminated == nil || verdict.Eliminated.Name != "Ana" {
		t.Fatalf("eliminated = %+v, want the imposter Ana", verdict.Eliminated)
	}
}

func TestEvaluateBallotLiveMimicGetsGuess(t *testing.T) {
	players := roster(models.RoleImposter, models.RoleNeighbor, models.RoleMimic)
	verdict, err := EvaluateBallot(players, []string{"Ana"})
	if err != nil {
		t.Fatalf("EvaluateBallot: %v", err)
	}
	if verdict.Next != StepMimicGuess {
		t.Fatalf("verdict.Next = %v, want mimic guess", verdict.Next)
	}
	if verdict.Pending == nil || verdict.Pending.Winner != models.WinnerNeighbors {
		t.Fatalf("pending = %+v, want revocable neighbor win", verdict.Pending)
	}
}

func TestEvaluateBallotBountyHunterLastStand(t *testing.T) {
	players := roster(models.RoleBountyHunter, models.RoleImposter, models.RoleNeighbor)
	verdict, err := EvaluateBallot(players, []string{"Ana"})
	if err != nil {
		t.Fatalf("EvaluateBallot: %v", err)
	}
	if verdict.Next != StepLastStand {
		t.Fatalf("verdict.Next = %v, want last stand", verdict.Next)
	}
	if verdict.Pending.Winner != models.WinnerImposters {
		t.Fatalf("pending winner = %v, want imposters while unproven", verdict.Pending.Winner)
	}
}

func TestEvaluateBallotUnknownTarget(t *testing.T) {
	players := roster(models.RoleImposter, models.RoleNeighbor, models.RoleNeighbor)
	if _, err := EvaluateBallot(players, []string{"nobody"}); err == nil {
		t.Fatal("unknown ballot target accepted")
	}
}

func TestResolveLastStand(t *testing.T) {
	pending := Outcome{Winner: models.WinnerNeighbors, Reason: "pending"}
	imposter := &models.Player{Name: "Ben", Role: models.RoleImposter}

	out := ResolveLastStand(imposter, GuessProject, true, pending)
	if out.Winner != models.WinnerImposters {
		t.Fatalf("correct project guess: winner = %v, want imposters", out.Winner)
	}
	out = ResolveLastStand(imposter, GuessOracle, true, pending)
	if out.Winner != models.WinnerImposters {
		t.Fatalf("correct oracle hunt: winner = %v, want imposters", out.Winner)
	}
	out = ResolveLastStand(imposter, GuessProject, false, pending)
	if out.Winner != models.WinnerNeighbors {
		t.Fatalf("wrong guess: winner = %v, want neighbors", out.Winner)
	}
	if !strings.Contains(out.Reason, "failed to intercept intel") {
		t.Fatalf("wrong guess reason = %q, want the interception failure message", out.Reason)
	}
	out = ResolveLastStand(imposter, GuessTimeout, false, pending)
	if out.Winner != models.WinnerNeighbors {
		t.Fatalf("timeout: winner = %v, want neighbors", out.Winner)
	}
	if !strings.Contains(out.Reason, "Ben failed to intercept intel") {
		t.Fatalf("timeout reason = %q, want the interception failure message", out.Reason)
	}
}

func TestResolveLastStandBountyHunterReversal(t *testing.T) {
	pending := Outcome{Winner: models.WinnerImposters, Reason: "pending"}
	hunter := &models.Player{Name: "Ana", Role: models.RoleBountyHunter}

	out := ResolveLastStand(hunter, GuessProject, true, pending)
	if out.Winner != models.WinnerNeighbors {
		t.Fatalf("proven hunter: winner = %v, want neighbors", out.Winner)
	}
	out = ResolveLastStand(hunter, GuessProject, false, pending)
	if out.Winner != models.WinnerImposters {
		t.Fatalf("failed hunter: winner = %v, want imposters", out.Winner)
	}
}

func TestResolveMimicGuess(t *testing.T) {
	pending := Outcome{Winner: models.WinnerNeighbors, Reason: "pending"}
	mimic := &models.Player{Name: "Cleo", Role: models.RoleMimic}

	if out := ResolveMimicGuess(mimic, true, pending); out.Winner != models.WinnerMimic {
		t.Fatalf("correct mimic guess: winner = %v, want mimic", out.Winner)
	}
	if out := ResolveMimicGuess(mimic, false, pending); out.Winner != models.WinnerNeighbors {
		t.Fatalf("failed mimic guess: winner = %v, want pending confirmed", out.Winner)
	}
}

func TestCorrectProjectGuess(t *testing.T) {
	if !CorrectProjectGuess("  lighthouse ", "Lighthouse") {
		t.Fatal("case and whitespace should be ignored")
	}
	if CorrectProjectGuess("Windmill", "Lighthouse") {
		t.Fatal("different words matched")
	}
}

func newTestResolver(t *testing.T) (*Resolver, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	r := NewResolver(mem)
	r.now = func() time.Time { return time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC) }
	return r, mem
}

func TestCommitAwardsWinnersOnly(t *testing.T) {
	r, _ := newTestResolver(t)
	players := roster(models.RoleNeighbor, models.RoleImposter, models.RoleOracle)
	players[0].ActiveRisk = models.RiskTarget

	r.Commit(players, models.ModeTerms, true, Outcome{Winner: models.WinnerNeighbors, Reason: "test"})

	points := r.Points()
	if points["Ana"] != BaseWinPoints || points["Cleo"] != BaseWinPoints {
		t.Fatalf("good team points = %v, want %d each", points, BaseWinPoints)
	}
	if points["Ben"] != 0 {
		t.Fatalf("imposter scored %d on a loss", points["Ben"])
	}
	credits := r.Credits()
	if want := StartingCredits + models.RiskTarget.CreditBonus(); credits["Ana"] != want {
		t.Fatalf("winner credits = %d, want %d (starting budget plus Target bonus)", credits["Ana"], want)
	}
	if credits["Ben"] != StartingCredits {
		t.Fatalf("losing player credits = %d, want the untouched starting budget %d", credits["Ben"], StartingCredits)
	}
}

func TestCommitBlindImposterBonus(t *testing.T) {
	r, _ := newTestResolver(t)
	players := roster(models.RoleNeighbor, models.RoleImposter)

	r.Commit(players, models.ModeTerms, false, Outcome{Winner: models.WinnerImposters, Reason: "test"})

	if got := r.Points()["Ben"]; got != BlindImposterWinPoints {
		t.Fatalf("blind imposter points = %d, want %d", got, BlindImposterWinPoints)
	}
}

func TestCommitHistoryNewestFirstAndCapped(t *testing.T) {
	r, _ := newTestResolver(t)
	players := roster(models.RoleNeighbor, models.RoleImposter)

	for i := 0; i < models.MaxHistoryEntries+5; i++ {
		winner := models.WinnerNeighbors
		if i == models.MaxHistoryEntries+4 {
			winner = models.WinnerImposters
		}
		r.Commit(players, models.ModeTerms, true, Outcome{Winner: winner, Reason: "round"})
	}

	history := r.History()
	if len(history) != models.MaxHistoryEntries {
		t.Fatalf("history len = %d, want cap %d", len(history), models.MaxHistoryEntries)
	}
	if history[0].Winner != models.WinnerImposters {
		t.Fatalf("newest entry winner = %v, want the last committed", history[0].Winner)
	}
}

func TestClearStats(t *testing.T) {
	r, _ := newTestResolver(t)
	players := roster(models.RoleNeighbor, models.RoleImposter)
	r.Commit(players, models.ModeTerms, true, Outcome{Winner: models.WinnerNeighbors, Reason: "test"})

	r.ClearStats()

	if len(r.Points()) != 0 || len(r.Credits()) != 0 || len(r.History()) != 0 {
		t.Fatal("stats survived a clear")
	}
}
