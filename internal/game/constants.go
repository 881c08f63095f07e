package game

const (
	// MinPlayers is the minimum number of players required to start a session.
	MinPlayers = 3

	// MaxPlayers is the hard cap on session size.
	MaxPlayers = 100

	// MaxNameLength bounds player names at setup.
	MaxNameLength = 14

	// StartingCredits is the credit budget granted to a player the
	// first time their name appears in a session.
	StartingCredits = 10

	// InvestmentBudget is the points each player allocates in Investment mode.
	InvestmentBudget = 10

	// InquestRounds is how many question rounds an Inquest session runs.
	InquestRounds = 3

	// DetectionCap ends a Virus Purge session with a virus win.
	DetectionCap = 3

	// BaseWinPoints is the flat score for being on the winning team.
	BaseWinPoints = 10

	// BlindImposterWinPoints rewards an imposter winning without hints.
	BlindImposterWinPoints = 20

	// AuctionPowerChoices is how many power-ups are offered per session.
	AuctionPowerChoices = 3
)
