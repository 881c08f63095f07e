package session

import (
	"github.com/imposterpurge/engine/internal/game"
	"github.com/imposterpurge/engine/internal/models"
)

// PlayerRef is the public slice of a player a shared screen may show.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HandoffView tells the table who the device goes to next.
type HandoffView struct {
	NextPlayer string `json:"nextPlayer"`
}

// AuctionView is the sealed-bid turn for the current bidder.
type AuctionView struct {
	Player          string           `json:"player"`
	Credits         int              `json:"credits"`
	AvailablePowers []models.PowerUp `json:"availablePowers"`
	BlindBidding    bool             `json:"blindBidding"`
}

// RevealView is one player's private briefing. RoleLabel already
// accounts for mysterious mode, where evil players see themselves as
// neighbors holding the decoy.
type RevealView struct {
	Player      string `json:"player"`
	RoleLabel   string `json:"roleLabel"`
	Project     string `json:"project"`
	Project2    string `json:"project2,omitempty"`
	OracleIntel string `json:"oracleIntel,omitempty"`
	Taboo       string `json:"taboo,omitempty"`
	Catch       string `json:"catch,omitempty"`
	Location    string `json:"location,omitempty"`
}

// MeetingView is the open-discussion screen.
type MeetingView struct {
	Category       string   `json:"category"`
	Location       string   `json:"location,omitempty"`
	Taboo          string   `json:"taboo,omitempty"`
	StartingPlayer string   `json:"startingPlayer"`
	EvilCount      int      `json:"evilCount"`
	Detections     int      `json:"detections,omitempty"`
	DetectionCap   int      `json:"detectionCap,omitempty"`
	RealProject    string   `json:"realProject,omitempty"` // PvE only
	PurgeGrid      []string `json:"purgeGrid,omitempty"`
}

// InquestView is either the shared question card or one player's
// selection screen, depending on phase.
type InquestView struct {
	Round    int      `json:"round"`
	Rounds   int      `json:"rounds"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Player   string   `json:"player,omitempty"`
	Answers  []Answer `json:"answers,omitempty"` // reveal phase only
}

// Answer is one player's recorded inquest pick.
type Answer struct {
	Player string   `json:"player"`
	Picks  []string `json:"picks"`
}

// InvestmentView is the budget-split screen or the spend comparison.
type InvestmentView struct {
	Categories []string `json:"categories"`
	Budget     int      `json:"budget"`
	Player     string   `json:"player,omitempty"`
	Spends     []Spend  `json:"spends,omitempty"` // reveal phase only
}

// Spend is one player's revealed allocation.
type Spend struct {
	Player     string                 `json:"player"`
	Allocation models.InvestmentSpend `json:"allocation"`
}

// VotingView carries the roster and the required ballot size.
type VotingView struct {
	BallotSize int `json:"ballotSize"`
}

// LastStandView is the accused's redemption screen.
type LastStandView struct {
	Accused    string   `json:"accused"`
	Options    []string `json:"options,omitempty"` // empty in word modes: free text
	FreeText   bool     `json:"freeText"`
	OracleHunt bool     `json:"oracleHunt"`
}

// MimicView is the mimic's steal attempt.
type MimicView struct {
	Mimic    string   `json:"mimic"`
	Options  []string `json:"options,omitempty"`
	FreeText bool     `json:"freeText"`
}

// VirusView is the co-op purge guess.
type VirusView struct {
	RealProject string   `json:"realProject"`
	PurgeGrid   []string `json:"purgeGrid"`
}

// ResultRow pairs a player with their unmasked role and score delta.
type ResultRow struct {
	Name string      `json:"name"`
	Role models.Role `json:"role"`
	Won  bool        `json:"won"`
}

// ResultsView is the debrief screen.
type ResultsView struct {
	Winner models.Winner `json:"winner"`
	Reason string        `json:"reason"`
	Roster []ResultRow   `json:"roster"`
}

// View is the full shared-device payload for the current phase. Fields
// irrelevant to the phase are nil; secrets for other players never
// appear outside their own reveal.
type View struct {
	Phase      models.Phase    `json:"phase"`
	Players    []PlayerRef     `json:"players,omitempty"`
	Remaining  int             `json:"remaining,omitempty"`
	Handoff    *HandoffView    `json:"handoff,omitempty"`
	Auction    *AuctionView    `json:"auction,omitempty"`
	Reveal     *RevealView     `json:"reveal,omitempty"`
	Meeting    *MeetingView    `json:"meeting,omitempty"`
	Inquest    *InquestView    `json:"inquest,omitempty"`
	Investment *InvestmentView `json:"investment,omitempty"`
	Voting     *VotingView     `json:"voting,omitempty"`
	LastStand  *LastStandView  `json:"lastStand,omitempty"`
	Mimic      *MimicView      `json:"mimic,omitempty"`
	Virus      *VirusView      `json:"virus,omitempty"`
	Results    *ResultsView    `json:"results,omitempty"`
}

// View assembles the shared screen for the current phase.
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := View{Phase: e.phase, Remaining: e.timerRemaining}
	if len(e.players) > 0 {
		v.Players = make([]PlayerRef, len(e.players))
		for i, p := range e.players {
			v.Players[i] = PlayerRef{ID: p.ID, Name: p.Name}
		}
	}

	switch e.phase {
	case models.PhaseAuctionReveal:
		v.Auction = &AuctionView{
			AvailablePowers: e.gameCtx.AvailablePowers,
			BlindBidding:    e.gameCtx.IsBlindBidding,
		}
	case models.PhaseAuctionTransition, models.PhaseRevealTransition,
		models.PhaseInquestTransition, models.PhaseInvestmentTransit:
		if p := e.currentPlayer(); p != nil {
			v.Handoff = &HandoffView{NextPlayer: p.Name}
		}
	case models.PhaseAuctionBidding:
		if p := e.currentPlayer(); p != nil {
			v.Auction = &AuctionView{
				Player:          p.Name,
				Credits:         p.Credits,
				AvailablePowers: e.gameCtx.AvailablePowers,
				BlindBidding:    e.gameCtx.IsBlindBidding,
			}
		}
	case models.PhaseReveal:
		v.Reveal = e.revealView()
	case models.PhaseStartingPlayer:
		v.Meeting = &MeetingView{StartingPlayer: e.gameCtx.StartingPlayerName}
	case models.PhaseMeeting:
		v.Meeting = e.meetingView()
	case models.PhaseInquestQuestion:
		v.Inquest = e.inquestView(false)
	case models.PhaseInquestSelection:
		v.Inquest = e.inquestView(false)
		if p := e.currentPlayer(); p != nil {
			v.Inquest.Player = p.Name
		}
	case models.PhaseInquestReveal:
		v.Inquest = e.inquestView(true)
	case models.PhaseInvestmentInput:
		iv := &InvestmentView{Categories: e.gameCtx.InvestmentCategories, Budget: game.InvestmentBudget}
		if p := e.currentPlayer(); p != nil {
			iv.Player = p.Name
		}
		v.Investment = iv
	case models.PhaseInvestmentReveal:
		iv := &InvestmentView{Categories: e.gameCtx.InvestmentCategories, Budget: game.InvestmentBudget}
		for _, p := range e.players {
			iv.Spends = append(iv.Spends, Spend{Player: p.Name, Allocation: p.InvestmentSpend})
		}
		v.Investment = iv
	case models.PhaseVoting:
		size := e.gameCtx.EvilTeamCount
		if size < 1 {
			size = 1
		}
		v.Voting = &VotingView{BallotSize: size}
	case models.PhaseLastStand:
		v.LastStand = e.lastStandView()
	case models.PhaseMimicGuess:
		mv := &MimicView{FreeText: e.gameCtx.MainMode.WordBased()}
		if m := e.findRole(models.RoleMimic); m != nil {
			mv.Mimic = m.Name
		}
		if !mv.FreeText {
			mv.Options = e.lastStandOptions
			if len(mv.Options) == 0 {
				mv.Options = e.guessOptions()
			}
		}
		v.Mimic = mv
	case models.PhaseVirusGuess:
		v.Virus = &VirusView{RealProject: e.gameCtx.RealProject, PurgeGrid: e.purgeGrid}
	case models.PhaseResults:
		v.Results = e.resultsView()
	}
	return v
}

func (e *Engine) revealView() *RevealView {
	p := e.currentPlayer()
	if p == nil {
		return nil
	}
	rv := &RevealView{
		Player:      p.Name,
		RoleLabel:   string(p.Role),
		Project:     p.AssignedProject,
		Project2:    p.AssignedProject2,
		OracleIntel: p.OracleIntel,
		Taboo:       e.gameCtx.TabooConstraint,
	}
	// Mysterious sessions brief evil players as neighbors so they do
	// not know they hold the decoy.
	if e.cfg.GameMode == models.GameModeMysterious && p.Role.EvilAligned() {
		rv.RoleLabel = string(models.RoleNeighbor)
	}
	if p.Role.EvilAligned() && e.cfg.GameMode != models.GameModeMysterious {
		rv.Catch = e.gameCtx.CatchRule
	}
	if e.gameCtx.MainMode == models.ModeScheme || e.gameCtx.MainMode == models.ModeInvestment {
		rv.Location = e.gameCtx.Location
	}
	return rv
}

func (e *Engine) meetingView() *MeetingView {
	mv := &MeetingView{
		Category:       e.gameCtx.Category,
		Taboo:          e.gameCtx.TabooConstraint,
		StartingPlayer: e.gameCtx.StartingPlayerName,
		EvilCount:      e.gameCtx.EvilTeamCount,
	}
	if e.gameCtx.MainMode == models.ModeScheme || e.gameCtx.MainMode == models.ModeInvestment {
		mv.Location = e.gameCtx.Location
	}
	if e.gameCtx.MainMode == models.ModeVirusPurge {
		mv.Detections = e.virusDetections
		mv.DetectionCap = game.DetectionCap
		mv.RealProject = e.gameCtx.RealProject
		mv.PurgeGrid = e.purgeGrid
	}
	return mv
}

func (e *Engine) inquestView(withAnswers bool) *InquestView {
	iv := &InquestView{
		Round:   e.inquestRound + 1,
		Rounds:  game.InquestRounds,
		Options: e.gameCtx.InquestOptions,
	}
	if e.inquestRound < len(e.gameCtx.InquestQuestions) {
		iv.Question = e.gameCtx.InquestQuestions[e.inquestRound]
	}
	if withAnswers {
		for _, p := range e.players {
			iv.Answers = append(iv.Answers, Answer{Player: p.Name, Picks: p.InquestAnswers})
		}
	}
	return iv
}

func (e *Engine) lastStandView() *LastStandView {
	lv := &LastStandView{
		FreeText:   e.gameCtx.MainMode.WordBased(),
		OracleHunt: e.gameCtx.HasOracleActive,
	}
	if e.eliminated != nil {
		lv.Accused = e.eliminated.Name
	}
	if !lv.FreeText {
		lv.Options = e.lastStandOptions
	}
	return lv
}

// guessOptions rebuilds the option list when the mimic phase was
// reached without a last stand.
func (e *Engine) guessOptions() []string {
	opts := []string{e.gameCtx.RealProject}
	opts = append(opts, e.gameCtx.Distractors...)
	e.rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	e.lastStandOptions = opts
	return opts
}

func (e *Engine) resultsView() *ResultsView {
	if e.outcome == nil {
		return nil
	}
	rv := &ResultsView{Winner: e.outcome.Winner, Reason: e.outcome.Reason}
	for _, p := range e.players {
		rv.Roster = append(rv.Roster, ResultRow{
			Name: p.Name,
			Role: p.Role,
			Won:  game.PlayerWon(p.Role, e.outcome.Winner),
		})
	}
	return rv
}
