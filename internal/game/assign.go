package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/imposterpurge/engine/internal/models"
)

// UnknownSecret is shown to roles whose reveal policy hides the secret.
const UnknownSecret = "???"

// ErrInvalidName rejects a player name at setup time.
var ErrInvalidName = fmt.Errorf("invalid player name")

var forbiddenNames = []string{
	"neighbor", "imposter", "mr. white", "mr white", "anarchist",
	"mimic", "the mimic", "oracle", "the oracle", "bounty hunter",
}

// ValidateName checks a player name against the setup rules: non-empty
// after trimming, at most MaxNameLength runes, and not a reserved role
// identifier.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if len([]rune(trimmed)) > MaxNameLength {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidName, trimmed, MaxNameLength)
	}
	lower := strings.ToLower(trimmed)
	for _, reserved := range forbiddenNames {
		if lower == reserved {
			return fmt.Errorf("%w: %q is reserved", ErrInvalidName, trimmed)
		}
	}
	return nil
}

// RoleSetup is the input to the role assignment engine.
type RoleSetup struct {
	PlayerCount     int
	ImposterCount   int
	Distribution    models.RoleDistributionMode
	EnabledSpecials []models.Role
	Custom          models.CustomRoleConfig
}

// MaxImposters returns the imposter cap for a player count.
func MaxImposters(playerCount int) int { return playerCount / 2 }

func clampImposters(count, playerCount int) int {
	max := MaxImposters(playerCount)
	if count < 1 {
		return 1
	}
	if count > max {
		return max
	}
	return count
}

// AssignRoles builds the role multiset for the chosen strategy, pads
// the remainder with neighbors and returns a uniformly shuffled
// permutation of length PlayerCount. Requested counts that exceed
// capacity are clamped rather than rejected.
func AssignRoles(cfg RoleSetup, rng Source) ([]models.Role, error) {
	if cfg.PlayerCount < MinPlayers || cfg.PlayerCount > MaxPlayers {
		return nil, fmt.Errorf("player count %d out of range [%d,%d]", cfg.PlayerCount, MinPlayers, MaxPlayers)
	}

	var roles []models.Role
	switch cfg.Distribution {
	case models.DistributionCustom:
		imposters := clampImposters(cfg.Custom.ImposterCount, cfg.PlayerCount)
		for i := 0; i < imposters; i++ {
			roles = append(roles, models.RoleImposter)
		}
		roles = appendRandomSpecials(roles, cfg.Custom.SpecialCount, cfg.EnabledSpecials, cfg.PlayerCount, rng)

	case models.DistributionSurprise:
		imposters := surpriseDraw(cfg.Custom.MinImposters, cfg.Custom.MaxImposters, rng)
		imposters = clampImposters(imposters, cfg.PlayerCount)
		for i := 0; i < imposters; i++ {
			roles = append(roles, models.RoleImposter)
		}
		specials := surpriseDraw(cfg.Custom.MinSpecials, cfg.Custom.MaxSpecials, rng)
		roles = appendRandomSpecials(roles, specials, cfg.EnabledSpecials, cfg.PlayerCount, rng)

	default: // Standard: exact enabled specials
		imposters := clampImposters(cfg.ImposterCount, cfg.PlayerCount)
		for i := 0; i < imposters; i++ {
			roles = append(roles, models.RoleImposter)
		}
		for _, special := range cfg.EnabledSpecials {
			if len(roles) >= cfg.PlayerCount-1 {
				break // keep at least one neighbor slot
			}
			roles = append(roles, special)
		}
	}

	for len(roles) < cfg.PlayerCount {
		roles = append(roles, models.RoleNeighbor)
	}
	roles = roles[:cfg.PlayerCount]

	rng.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})

	if err := checkRoleInvariants(roles, cfg.PlayerCount); err != nil {
		return nil, err
	}
	return roles, nil
}

func appendRandomSpecials(roles []models.Role, count int, pool []models.Role, playerCount int, rng Source) []models.Role {
	if len(pool) == 0 {
		return roles
	}
	for i := 0; i < count; i++ {
		if len(roles) >= playerCount-1 {
			break
		}
		roles = append(roles, pool[rng.Intn(len(pool))])
	}
	return roles
}

func surpriseDraw(min, max int, rng Source) int {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return min + rng.Intn(max-min+1)
}

// checkRoleInvariants guards the engine's output contract; a failure
// here is a bug, not a configuration problem, and must abort the
// session rather than corrupt scoring.
func checkRoleInvariants(roles []models.Role, playerCount int) error {
	if len(roles) != playerCount {
		return fmt.Errorf("role list length %d != player count %d", len(roles), playerCount)
	}
	evil := 0
	for _, r := range roles {
		if r.EvilAligned() {
			evil++
		}
	}
	if evil < 1 || evil > MaxImposters(playerCount) {
		return fmt.Errorf("imposter-aligned count %d outside [1,%d]", evil, MaxImposters(playerCount))
	}
	return nil
}

// BuildPlayers materializes the session roster: one player per role,
// secret content assigned per the mode's rules, credits carried over
// from previous sessions (or the starting budget for new names).
func BuildPlayers(names []string, roles []models.Role, ctx *models.GameContext, credits map[string]int, rng Source) ([]*models.Player, error) {
	if len(names) != len(roles) {
		return nil, fmt.Errorf("name count %d != role count %d", len(names), len(roles))
	}

	players := make([]*models.Player, len(roles))
	for i, role := range roles {
		p := &models.Player{
			ID:      uuid.New().String(),
			Name:    names[i],
			Role:    role,
			Credits: StartingCredits,
		}
		if c, ok := credits[p.Name]; ok {
			p.Credits = c
		}
		assignSecret(p, i, len(roles), ctx)
		players[i] = p
	}

	assignOracleIntel(players, ctx, rng)
	return players, nil
}

// assignSecret applies the per-player content rule for the mode.
func assignSecret(p *models.Player, idx, playerCount int, ctx *models.GameContext) {
	if ctx.MainMode == models.ModePair && len(ctx.DualWordsChain) == playerCount {
		if p.Role.Info().Reveal == models.RevealReal {
			prev := (idx - 1 + playerCount) % playerCount
			p.AssignedProject = ctx.DualWordsChain[prev]
			p.AssignedProject2 = ctx.DualWordsChain[idx]
		} else {
			p.AssignedProject = UnknownSecret
			p.AssignedProject2 = UnknownSecret
		}
		return
	}

	switch p.Role.Info().Reveal {
	case models.RevealReal:
		p.AssignedProject = ctx.RealProject
	case models.RevealDecoy:
		p.AssignedProject = ctx.ImposterProject
	default:
		p.AssignedProject = UnknownSecret
	}
}

// assignOracleIntel hands each oracle the name of one imposter, chosen
// after the shuffle so the intel matches the final roster.
func assignOracleIntel(players []*models.Player, ctx *models.GameContext, rng Source) {
	var imposters []*models.Player
	hasOracle := false
	for _, p := range players {
		if p.Role == models.RoleImposter {
			imposters = append(imposters, p)
		}
		if p.Role == models.RoleOracle {
			hasOracle = true
		}
	}
	ctx.HasOracleActive = hasOracle
	if !hasOracle || len(imposters) == 0 {
		return
	}
	for _, p := range players {
		if p.Role == models.RoleOracle {
			p.OracleIntel = imposters[rng.Intn(len(imposters))].Name
		}
	}
}
