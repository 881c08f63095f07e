package models

// MainMode selects which ruleset variant a session plays.
type MainMode string

const (
	ModeTerms      MainMode = "Terms"
	ModeScheme     MainMode = "Scheme"
	ModeInquest    MainMode = "Inquest"
	ModeInvestment MainMode = "Investment"
	ModePair       MainMode = "Pair"
	ModeVirusPurge MainMode = "Virus Purge"
)

// WordBased reports whether the mode's secret is a word pair, which
// makes guess phases use free-text input instead of multiple choice.
func (m MainMode) WordBased() bool {
	return m == ModeTerms || m == ModePair
}

// GameCategory splits competitive play from the co-op virus hunt.
type GameCategory string

const (
	CategoryPvP GameCategory = "pvp"
	CategoryPvE GameCategory = "pve"
)

// GameMode controls how much imposters learn at reveal time.
type GameMode string

const (
	// GameModeNormal shows imposters their decoy with an imposter banner.
	GameModeNormal GameMode = "Normal"
	// GameModeMysterious shows imposters the decoy as if it were the
	// real word; they do not know they are imposters.
	GameModeMysterious GameMode = "Mysterious"
)

// RoleDistributionMode selects how the role multiset is built.
type RoleDistributionMode string

const (
	DistributionStandard RoleDistributionMode = "Standard"
	DistributionCustom   RoleDistributionMode = "Custom"
	DistributionSurprise RoleDistributionMode = "Surprise"
)

// CustomRoleConfig carries explicit counts for the Custom strategy and
// the ranges for the Surprise strategy.
type CustomRoleConfig struct {
	NeighborCount int
	ImposterCount int
	SpecialCount  int
	MinImposters  int
	MaxImposters  int
	MinSpecials   int
	MaxSpecials   int
}

// GameContext is the shared mission data for one session. It is
// immutable once built except fields filled in asynchronously by the
// content provider before the session starts.
type GameContext struct {
	MainMode MainMode
	Category string

	RealProject     string
	ImposterProject string
	Location        string
	CatchRule       string
	TabooConstraint string
	Distractors     []string

	InquestQuestions []string
	InquestOptions   []string

	InvestmentCategories []string

	DualWordsChain []string // circular chain, Pair mode only

	VirusWord  string
	NoiseWords []string

	StartingPlayerName string
	EvilTeamCount      int

	IncludeHints    bool
	HasOracleActive bool
	IsAuctionActive bool
	IsBlindBidding  bool
	AvailablePowers []PowerUp
}
