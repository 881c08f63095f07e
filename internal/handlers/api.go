package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/imposterpurge/engine/internal/models"
	"github.com/imposterpurge/engine/internal/session"
)

// HandleState returns the full shared-screen view for the current
// phase, plus any pending notices.
func (ctx *Context) HandleState(w http.ResponseWriter, r *http.Request) {
	type statePayload struct {
		session.View
		Notices []any `json:"notices,omitempty"`
	}
	view := ctx.Engine.View()
	payload := statePayload{View: view}
	for _, n := range ctx.Engine.DrainNotices() {
		payload.Notices = append(payload.Notices, n)
	}
	writeJSON(w, http.StatusOK, payload)
}

// HandleOpenSetup moves from the home screen into setup.
func (ctx *Context) HandleOpenSetup(w http.ResponseWriter, r *http.Request) {
	if err := ctx.Engine.OpenSetup(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ctx.Engine.View())
}

// missionRequest is the wire form of a setup configuration.
type missionRequest struct {
	PlayerCount     int                         `json:"playerCount"`
	PlayerNames     []string                    `json:"playerNames"`
	ImposterCount   int                         `json:"imposterCount"`
	Distribution    models.RoleDistributionMode `json:"distribution"`
	Custom          customRoles                 `json:"custom"`
	EnabledSpecials []models.Role               `json:"enabledSpecials"`
	MainMode        models.MainMode             `json:"mainMode"`
	Category        models.GameCategory         `json:"category"`
	GameMode        models.GameMode             `json:"gameMode"`
	IncludeHints    bool                        `json:"includeHints"`
	IncludeTaboo    bool                        `json:"includeTaboo"`
	UseAIMissions   bool                        `json:"useAIMissions"`
	IsAuctionActive bool                        `json:"isAuctionActive"`
	IsBlindBidding  bool                        `json:"isBlindBidding"`
}

type customRoles struct {
	NeighborCount int `json:"neighborCount"`
	ImposterCount int `json:"imposterCount"`
	SpecialCount  int `json:"specialCount"`
	MinImposters  int `json:"minImposters"`
	MaxImposters  int `json:"maxImposters"`
	MinSpecials   int `json:"minSpecials"`
	MaxSpecials   int `json:"maxSpecials"`
}

// HandleStartMission validates the setup and starts the session.
func (ctx *Context) HandleStartMission(w http.ResponseWriter, r *http.Request) {
	var req missionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", session.ErrConfig, err))
		return
	}
	err := ctx.Engine.StartMission(r.Context(), session.SetupConfig{
		PlayerCount:     req.PlayerCount,
		PlayerNames:     req.PlayerNames,
		ImposterCount:   req.ImposterCount,
		Distribution:    req.Distribution,
		Custom:          models.CustomRoleConfig(req.Custom),
		EnabledSpecials: req.EnabledSpecials,
		MainMode:        req.MainMode,
		Category:        req.Category,
		GameMode:        req.GameMode,
		IncludeHints:    req.IncludeHints,
		IncludeTaboo:    req.IncludeTaboo,
		UseAIMissions:   req.UseAIMissions,
		IsAuctionActive: req.IsAuctionActive,
		IsBlindBidding:  req.IsBlindBidding,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ctx.Engine.View())
}

// actionRequest is the generic action envelope. Type selects the
// engine method; the remaining fields carry its arguments.
type actionRequest struct {
	Type     string                 `json:"type"`
	Target   models.Phase           `json:"target,omitempty"`
	Bid      *bidRequest            `json:"bid,omitempty"`
	Ballot   []string               `json:"ballot,omitempty"`
	PlayerID string                 `json:"playerId,omitempty"`
	Guess    string                 `json:"guess,omitempty"`
	Option   string                 `json:"option,omitempty"`
	Spend    models.InvestmentSpend `json:"spend,omitempty"`
}

type bidRequest struct {
	Power  models.PowerUp      `json:"power,omitempty"`
	Risk   models.RiskContract `json:"risk,omitempty"`
	Amount int                 `json:"amount"`
}

// HandleAction dispatches one discrete action to the engine. The phase
// machine itself decides whether the action is legal right now.
func (ctx *Context) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", session.ErrConfig, err))
		return
	}
	if debug {
		log.Printf("action: type=%s phase=%s", req.Type, ctx.Engine.Phase())
	}

	var err error
	switch req.Type {
	case "begin_auction":
		err = ctx.Engine.BeginAuction()
	case "confirm_pass":
		err = ctx.Engine.ConfirmPass()
	case "place_bid":
		bid := session.Bid{}
		if req.Bid != nil {
			bid = session.Bid{Power: req.Bid.Power, Risk: req.Bid.Risk, Amount: req.Bid.Amount}
		}
		err = ctx.Engine.PlaceBid(bid)
	case "confirm_reveal":
		err = ctx.Engine.ConfirmReveal()
	case "open_comms":
		err = ctx.Engine.OpenComms()
	case "skip_meeting":
		err = ctx.Engine.SkipMeeting()
	case "report_detection":
		err = ctx.Engine.ReportDetection()
	case "cast_ballot":
		err = ctx.Engine.CastBallot(req.Ballot)
	case "last_stand_project":
		err = ctx.Engine.SubmitLastStandProject(req.Guess)
	case "last_stand_oracle":
		err = ctx.Engine.SubmitLastStandOracle(req.PlayerID)
	case "mimic_guess":
		err = ctx.Engine.SubmitMimicGuess(req.PlayerID, req.Guess)
	case "virus_guess":
		err = ctx.Engine.SubmitVirusGuess(req.Guess)
	case "advance_inquest":
		err = ctx.Engine.AdvanceInquest()
	case "inquest_answer":
		err = ctx.Engine.SubmitInquestAnswer(req.Option)
	case "investment_spend":
		err = ctx.Engine.SubmitInvestment(req.Spend)
	case "finish_investment":
		err = ctx.Engine.FinishInvestmentReveal()
	case "navigate":
		err = ctx.Engine.Navigate(req.Target)
	case "back":
		err = ctx.Engine.Back()
	default:
		err = fmt.Errorf("%w: unknown action %q", session.ErrInvalidAction, req.Type)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ctx.Engine.View())
}

// HandleReset tears the session down from any phase.
func (ctx *Context) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx.Engine.Reset()
	writeJSON(w, http.StatusOK, ctx.Engine.View())
}
