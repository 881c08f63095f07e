package models

// PowerUp is an ability purchasable during the auction phase.
type PowerUp string

const (
	PowerPolygraph    PowerUp = "The Polygraph"
	PowerGhostWhisper PowerUp = "The Ghost Whisper"
	PowerVeto         PowerUp = "The Veto"
	PowerDoubleVote   PowerUp = "The Double Vote"
	PowerInsight      PowerUp = "The Insight"
)

// AllPowerUps returns the full power-up pool in fixed order.
func AllPowerUps() []PowerUp {
	return []PowerUp{PowerPolygraph, PowerGhostWhisper, PowerVeto, PowerDoubleVote, PowerInsight}
}

// RiskContract is an auction-phase wager that pays bonus credits, but
// only if the player ends up on the winning team.
type RiskContract string

const (
	RiskVerbose    RiskContract = "The Verbose"
	RiskMinimalist RiskContract = "The Minimalist"
	RiskTarget     RiskContract = "The Target"
)

// CreditBonus is the payout a winning player earns for the contract.
func (r RiskContract) CreditBonus() int {
	switch r {
	case RiskVerbose:
		return 3
	case RiskMinimalist:
		return 2
	case RiskTarget:
		return 4
	default:
		return 0
	}
}

// InvestmentSpend maps an investment category to allocated budget points.
type InvestmentSpend map[string]int

// Total sums all allocated points.
func (s InvestmentSpend) Total() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Player is one participant in the active session. Players are owned
// exclusively by the session and discarded when it resets; persistent
// identity is the name, which keys the score ledger.
type Player struct {
	ID   string
	Name string
	Role Role

	AssignedProject  string
	AssignedProject2 string // second chain word, Pair mode only
	OracleIntel      string // name of one imposter, oracle only

	InquestAnswers  []string
	InvestmentSpend InvestmentSpend

	Credits     int
	BidAmount   int
	ActivePower PowerUp
	ActiveRisk  RiskContract
}

// HasSecondWord reports whether the player carries a Pair-mode chain slot.
func (p *Player) HasSecondWord() bool { return p.AssignedProject2 != "" }
