package handlers

import (
	"fmt"
	"net/http"

	"github.com/imposterpurge/engine/internal/models"
	"github.com/imposterpurge/engine/internal/session"
)

// HandleGetSettings returns the active preferences.
func (ctx *Context) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ctx.Engine.Settings())
}

// HandlePutSettings replaces the preferences. Out-of-range durations
// are clamped back to defaults, not rejected.
func (ctx *Context) HandlePutSettings(w http.ResponseWriter, r *http.Request) {
	var s models.Settings
	if err := decode(r, &s); err != nil {
		writeError(w, fmt.Errorf("%w: %v", session.ErrConfig, err))
		return
	}
	ctx.Engine.UpdateSettings(s)
	writeJSON(w, http.StatusOK, ctx.Engine.Settings())
}

// HandleLeaderboard returns the persistent score ledger, credit
// balances and the capped session history.
func (ctx *Context) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	type leaderboard struct {
		Points  map[string]int        `json:"points"`
		Credits map[string]int        `json:"credits"`
		History []models.HistoryEntry `json:"history"`
	}
	writeJSON(w, http.StatusOK, leaderboard{
		Points:  ctx.Resolver.Points(),
		Credits: ctx.Resolver.Credits(),
		History: ctx.Resolver.History(),
	})
}

// HandleClearStats wipes points, credits and history.
func (ctx *Context) HandleClearStats(w http.ResponseWriter, r *http.Request) {
	ctx.Resolver.ClearStats()
	w.WriteHeader(http.StatusNoContent)
}
