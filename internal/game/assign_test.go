package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/imposterpurge/engine/internal/models"
)

func TestValidateName(t *testing.T) {
	if err := ValidateName("Alice"); err != nil {
		t.Fatalf("valid name rejected: %v", err)
	}
	if err := ValidateName("  "); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("blank name accepted, err = %v", err)
	}
	if err := ValidateName(strings.Repeat("x", MaxNameLength+1)); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("overlong name accepted, err = %v", err)
	}
	if err := ValidateName("Imposter"); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("reserved role name accepted, err = %v", err)
	}
	if err := ValidateName("  Bounty Hunter "); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("reserved name with padding accepted, err = %v", err)
	}
}

func countRoles(roles []models.Role) map[models.Role]int {
	out := map[models.Role]int{}
	for _, r := range roles {
		out[r]++
	}
	return out
}

func TestAssignRolesStandard(t *testing.T) {
	rng := NewSource(1)
	roles, err := AssignRoles(RoleSetup{
		PlayerCount:     8,
		ImposterCount:   2,
		Distribution:    models.DistributionStandard,
		EnabledSpecials: []models.Role{models.RoleOracle, models.RoleAnarchist},
	}, rng)
	if err != nil {
		t.Fatalf("AssignRoles: %v", err)
	}
	if len(roles) != 8 {
		t.Fatalf("got %d roles, want 8", len(roles))
	}
	counts := countRoles(roles)
	if counts[models.RoleImposter] != 2 {
		t.Fatalf("imposters = %d, want 2", counts[models.RoleImposter])
	}
	if counts[models.RoleOracle] != 1 || counts[models.RoleAnarchist] != 1 {
		t.Fatalf("specials missing: %v", counts)
	}
	if counts[models.RoleNeighbor] != 4 {
		t.Fatalf("neighbors = %d, want 4", counts[models.RoleNeighbor])
	}
}

func TestAssignRolesClampsImposterCount(t *testing.T) {
	rng := NewSource(2)
	roles, err := AssignRoles(RoleSetup{
		PlayerCount:   5,
		ImposterCount: 20,
		Distribution:  models.DistributionStandard,
	}, rng)
	if err != nil {
		t.Fatalf("AssignRoles: %v", err)
	}
	counts := countRoles(roles)
	if counts[models.RoleImposter] != MaxImposters(5) {
		t.Fatalf("imposters = %d, want clamp to %d", counts[models.RoleImposter], MaxImposters(5))
	}
}

func TestAssignRolesClampsAtMaxPlayers(t *testing.T) {
	rng := NewSource(7)
	roles, err := AssignRoles(RoleSetup{
		PlayerCount:   MaxPlayers,
		ImposterCount: MaxPlayers,
		Distribution:  models.DistributionStandard,
	}, rng)
	if err != nil {
		t.Fatalf("AssignRoles: %v", err)
	}
	if len(roles) != MaxPlayers {
		t.Fatalf("role count = %d, want %d", len(roles), MaxPlayers)
	}
	counts := countRoles(roles)
	if counts[models.RoleImposter] != MaxImposters(MaxPlayers) {
		t.Fatalf("imposters = %d, want clamp to %d", counts[models.RoleImposter], MaxImposters(MaxPlayers))
	}
}

func TestAssignRolesZeroImpostersBecomesOne(t *testing.T) {
	rng := NewSource(3)
	roles, err := AssignRoles(RoleSetup{
		PlayerCount:   4,
		ImposterCount: 0,
		Distribution:  models.DistributionStandard,
	}, rng)
	if err != nil {
		t.Fatalf("AssignRoles: %v", err)
	}
	if countRoles(roles)[models.RoleImposter] != 1 {
		t.Fatalf("want exactly one imposter for a zero request, got %v", countRoles(roles))
	}
}

func TestAssignRolesSurpriseStaysInBounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := NewSource(seed)
		roles, err := AssignRoles(RoleSetup{
			PlayerCount:     9,
			Distribution:    models.DistributionSurprise,
			EnabledSpecials: []models.Role{models.RoleMimic, models.RoleOracle},
			Custom: models.CustomRoleConfig{
				MinImposters: 1, MaxImposters: 3,
				MinSpecials: 0, MaxSpecials: 2,
			},
		}, rng)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		counts := countRoles(roles)
		if n := counts[models.RoleImposter]; n < 1 || n > 3 {
			t.Fatalf("seed %d: imposters = %d outside [1,3]", seed, n)
		}
		if n := counts[models.RoleMimic] + counts[models.RoleOracle]; n > 2 {
			t.Fatalf("seed %d: specials = %d above max 2", seed, n)
		}
	}
}

func TestAssignRolesRejectsBadPlayerCount(t *testing.T) {
	if _, err := AssignRoles(RoleSetup{PlayerCount: 2}, NewSource(1)); err == nil {
		t.Fatal("player count 2 accepted")
	}
}

func wordContext() *models.GameContext {
	return &models.GameContext{
		MainMode:        models.ModeTerms,
		RealProject:     "Lighthouse",
		ImposterProject: "Windmill",
	}
}

func TestBuildPlayersSecrets(t *testing.T) {
	names := []string{"Ana", "Ben", "Cleo", "Dev"}
	roles := []models.Role{
		models.RoleNeighbor, models.RoleImposter,
		models.RoleMrWhite, models.RoleAnarchist,
	}
	players, err := BuildPlayers(names, roles, wordContext(), nil, NewSource(4))
	if err != nil {
		t.Fatalf("BuildPlayers: %v", err)
	}
	if players[0].AssignedProject != "Lighthouse" {
		t.Fatalf("neighbor secret = %q, want real word", players[0].AssignedProject)
	}
	if players[1].AssignedProject != "Windmill" {
		t.Fatalf("imposter secret = %q, want decoy", players[1].AssignedProject)
	}
	if players[2].AssignedProject != UnknownSecret {
		t.Fatalf("mr. white secret = %q, want %q", players[2].AssignedProject, UnknownSecret)
	}
	if players[3].AssignedProject != UnknownSecret {
		t.Fatalf("anarchist secret = %q, want hidden", players[3].AssignedProject)
	}
	for _, p := range players {
		if p.ID == "" {
			t.Fatalf("player %s has no id", p.Name)
		}
		if p.Credits != StartingCredits {
			t.Fatalf("player %s credits = %d, want %d", p.Name, p.Credits, StartingCredits)
		}
	}
}

func TestBuildPlayersCarriesCredits(t *testing.T) {
	players, err := BuildPlayers(
		[]string{"Ana", "Ben", "Cleo"},
		[]models.Role{models.RoleNeighbor, models.RoleNeighbor, models.RoleImposter},
		wordContext(),
		map[string]int{"Ben": 4},
		NewSource(5),
	)
	if err != nil {
		t.Fatalf("BuildPlayers: %v", err)
	}
	if players[1].Credits != 4 {
		t.Fatalf("Ben credits = %d, want carried 4", players[1].Credits)
	}
	if players[0].Credits != StartingCredits {
		t.Fatalf("Ana credits = %d, want starting %d", players[0].Credits, StartingCredits)
	}
}

func TestBuildPlayersPairChain(t *testing.T) {
	ctx := &models.GameContext{
		MainMode:       models.ModePair,
		DualWordsChain: []string{"Sun", "Moon", "Star", "Comet"},
	}
	roles := []models.Role{
		models.RoleNeighbor, models.RoleNeighbor,
		models.RoleImposter, models.RoleNeighbor,
	}
	players, err := BuildPlayers([]string{"Ana", "Ben", "Cleo", "Dev"}, roles, ctx, nil, NewSource(6))
	if err != nil {
		t.Fatalf("BuildPlayers: %v", err)
	}
	// Player i holds chain[i-1] and chain[i], wrapping around.
	if players[0].AssignedProject != "Comet" || players[0].AssignedProject2 != "Sun" {
		t.Fatalf("player 0 pair = (%q,%q), want (Comet,Sun)", players[0].AssignedProject, players[0].AssignedProject2)
	}
	if players[1].AssignedProject != "Sun" || players[1].AssignedProject2 != "Moon" {
		t.Fatalf("player 1 pair = (%q,%q), want (Sun,Moon)", players[1].AssignedProject, players[1].AssignedProject2)
	}
	if players[2].AssignedProject != UnknownSecret || players[2].AssignedProject2 != UnknownSecret {
		t.Fatalf("imposter pair = (%q,%q), want hidden", players[2].AssignedProject, players[2].AssignedProject2)
	}
}

func TestOracleIntelNamesAnImposter(t *testing.T) {
	ctx := wordContext()
	roles := []models.Role{
		models.RoleOracle, models.RoleImposter,
		models.RoleImposter, models.RoleNeighbor,
	}
	players, err := BuildPlayers([]string{"Ana", "Ben", "Cleo", "Dev"}, roles, ctx, nil, NewSource(7))
	if err != nil {
		t.Fatalf("BuildPlayers: %v", err)
	}
	if !ctx.HasOracleActive {
		t.Fatal("HasOracleActive not set")
	}
	intel := players[0].OracleIntel
	if intel != "Ben" && intel != "Cleo" {
		t.Fatalf("oracle intel = %q, want an imposter name", intel)
	}
}
