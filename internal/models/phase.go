package models

// Phase represents where the session currently is in its flow.
type Phase string

const (
	PhaseHome               Phase = "HOME"
	PhaseSetup              Phase = "SETUP"
	PhaseAuctionReveal      Phase = "AUCTION_REVEAL"
	PhaseAuctionTransition  Phase = "AUCTION_TRANSITION"
	PhaseAuctionBidding     Phase = "AUCTION_BIDDING"
	PhaseRevealTransition   Phase = "REVEAL_TRANSITION"
	PhaseReveal             Phase = "REVEAL"
	PhaseStartingPlayer     Phase = "STARTING_PLAYER_ANNOUNCEMENT"
	PhaseMeeting            Phase = "MEETING"
	PhaseInquestQuestion    Phase = "INQUEST_QUESTION"
	PhaseInquestTransition  Phase = "INQUEST_TRANSITION"
	PhaseInquestSelection   Phase = "INQUEST_SELECTION"
	PhaseInquestReveal      Phase = "INQUEST_REVEAL"
	PhaseInvestmentInput    Phase = "INVESTMENT_INPUT"
	PhaseInvestmentTransit  Phase = "INVESTMENT_TRANSITION"
	PhaseInvestmentReveal   Phase = "INVESTMENT_REVEAL"
	PhaseVoting             Phase = "VOTING"
	PhaseLastStand          Phase = "LAST_STAND"
	PhaseMimicGuess         Phase = "MIMIC_GUESS"
	PhaseVirusGuess         Phase = "VIRUS_GUESS"
	PhaseResults            Phase = "RESULTS"
	PhaseSettings           Phase = "SETTINGS"
	PhaseLeaderboard        Phase = "LEADERBOARD"
	PhaseHelp               Phase = "HELP"
)

func (p Phase) String() string { return string(p) }

// sidePhases are informational screens reachable from several states.
var sidePhases = []Phase{PhaseSettings, PhaseLeaderboard, PhaseHelp}

var phaseTransitions = map[Phase][]Phase{
	PhaseHome:              {PhaseSetup},
	PhaseSetup:             {PhaseAuctionReveal, PhaseRevealTransition, PhaseHome},
	PhaseAuctionReveal:     {PhaseAuctionTransition},
	PhaseAuctionTransition: {PhaseAuctionBidding},
	PhaseAuctionBidding:    {PhaseAuctionTransition, PhaseRevealTransition},
	PhaseRevealTransition:  {PhaseReveal},
	PhaseReveal:            {PhaseRevealTransition, PhaseStartingPlayer},
	PhaseStartingPlayer:    {PhaseMeeting, PhaseInquestQuestion, PhaseInvestmentInput},
	PhaseMeeting:           {PhaseVoting, PhaseVirusGuess, PhaseResults},
	PhaseInquestQuestion:   {PhaseInquestTransition},
	PhaseInquestTransition: {PhaseInquestSelection},
	PhaseInquestSelection:  {PhaseInquestTransition, PhaseInquestReveal},
	PhaseInquestReveal:     {PhaseInquestQuestion, PhaseVoting},
	PhaseInvestmentInput:   {PhaseInvestmentTransit, PhaseInvestmentReveal},
	PhaseInvestmentTransit: {PhaseInvestmentInput},
	PhaseInvestmentReveal:  {PhaseMeeting},
	PhaseVoting:            {PhaseResults, PhaseLastStand, PhaseMimicGuess},
	PhaseLastStand:         {PhaseResults},
	PhaseMimicGuess:        {PhaseResults},
	PhaseVirusGuess:        {PhaseResults},
	PhaseResults:           {PhaseHome},
	PhaseSettings:          {PhaseHome, PhaseSetup},
	PhaseLeaderboard:       {PhaseHome, PhaseSetup},
	PhaseHelp:              {PhaseHome, PhaseSetup},
}

// CanTransitionTo checks whether moving from p to target is legal.
// The informational side screens are reachable from home, setup and
// results, and every side screen can return to home.
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, next := range phaseTransitions[p] {
		if next == target {
			return true
		}
	}
	if p == PhaseHome || p == PhaseSetup || p == PhaseResults {
		for _, side := range sidePhases {
			if target == side {
				return true
			}
		}
	}
	return false
}

// Terminal reports whether the phase ends the active play-through.
func (p Phase) Terminal() bool { return p == PhaseResults }
