package models

// Role is the secret identity assigned to a player for one session.
type Role string

const (
	RoleNeighbor     Role = "Neighbor"
	RoleImposter     Role = "Imposter"
	RoleMrWhite      Role = "Mr. White"
	RoleAnarchist    Role = "Anarchist"
	RoleMimic        Role = "Mimic"
	RoleOracle       Role = "Oracle"
	RoleBountyHunter Role = "Bounty Hunter"
)

// Team groups roles by shared win condition.
type Team string

const (
	TeamGood  Team = "good"
	TeamEvil  Team = "evil"
	TeamRogue Team = "rogue"
)

// RevealPolicy controls which secret a role sees during the reveal phase.
type RevealPolicy int

const (
	// RevealReal shows the real secret word/project.
	RevealReal RevealPolicy = iota
	// RevealDecoy shows the imposter decoy.
	RevealDecoy
	// RevealUnknown shows the "???" placeholder.
	RevealUnknown
)

// RoleInfo describes the static behavior of a role. Roles are a closed
// enum and every behavioral switch goes through this table instead of
// scattered conditionals.
type RoleInfo struct {
	Team    Team
	Reveal  RevealPolicy
	Special bool // selectable as a "special role" in setup
}

var roleTable = map[Role]RoleInfo{
	RoleNeighbor:     {Team: TeamGood, Reveal: RevealReal},
	RoleImposter:     {Team: TeamEvil, Reveal: RevealDecoy},
	RoleMrWhite:      {Team: TeamEvil, Reveal: RevealUnknown, Special: true},
	RoleAnarchist:    {Team: TeamRogue, Reveal: RevealUnknown, Special: true},
	RoleMimic:        {Team: TeamRogue, Reveal: RevealUnknown, Special: true},
	RoleOracle:       {Team: TeamGood, Reveal: RevealReal, Special: true},
	RoleBountyHunter: {Team: TeamGood, Reveal: RevealUnknown, Special: true},
}

// Info returns the lookup entry for the role. Unknown roles behave as
// neighbors so a corrupted value never flips a win condition.
func (r Role) Info() RoleInfo {
	if info, ok := roleTable[r]; ok {
		return info
	}
	return roleTable[RoleNeighbor]
}

// Team returns the team the role wins with.
func (r Role) Team() Team { return r.Info().Team }

// EvilAligned reports whether the role belongs to the imposter team.
func (r Role) EvilAligned() bool { return r.Info().Team == TeamEvil }

func (r Role) String() string { return string(r) }

// SpecialRoles lists every role selectable as a special in setup, in a
// fixed order so surprise draws are reproducible under a seeded source.
func SpecialRoles() []Role {
	return []Role{RoleMrWhite, RoleAnarchist, RoleMimic, RoleOracle, RoleBountyHunter}
}
