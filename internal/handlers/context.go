// Package handlers exposes the engine over a JSON HTTP API plus an SSE
// stream that pushes state changes to the shared screen.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/imposterpurge/engine/internal/content"
	"github.com/imposterpurge/engine/internal/game"
	"github.com/imposterpurge/engine/internal/session"
	"github.com/imposterpurge/engine/internal/sse"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Context wires the handlers to their collaborators.
type Context struct {
	Engine   *session.Engine
	Library  *content.Library
	Resolver *game.Resolver
	Broker   *sse.Broker
}

// Routes registers every endpoint on the mux.
func (ctx *Context) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/state", ctx.HandleState)
	mux.HandleFunc("POST /api/setup", ctx.HandleOpenSetup)
	mux.HandleFunc("POST /api/mission", ctx.HandleStartMission)
	mux.HandleFunc("POST /api/action", ctx.HandleAction)
	mux.HandleFunc("POST /api/reset", ctx.HandleReset)

	mux.HandleFunc("GET /api/settings", ctx.HandleGetSettings)
	mux.HandleFunc("PUT /api/settings", ctx.HandlePutSettings)
	mux.HandleFunc("GET /api/leaderboard", ctx.HandleLeaderboard)
	mux.HandleFunc("DELETE /api/leaderboard", ctx.HandleClearStats)

	mux.HandleFunc("GET /api/sets/{kind}", ctx.HandleListSets)
	mux.HandleFunc("POST /api/sets/{kind}", ctx.HandleUpsertSet)
	mux.HandleFunc("DELETE /api/sets/{kind}/{id}", ctx.HandleDeleteSet)
	mux.HandleFunc("PUT /api/sets/{kind}/active", ctx.HandleSetActive)

	mux.HandleFunc("GET /sse", ctx.HandleSSE)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps engine errors onto HTTP codes: rejected actions and
// bad configuration are client errors, everything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrInvalidAction):
		code = http.StatusConflict
	case errors.Is(err, session.ErrConfig),
		errors.Is(err, game.ErrInvalidName),
		errors.Is(err, content.ErrNoActiveSets),
		errors.Is(err, content.ErrLastSet):
		code = http.StatusBadRequest
	}
	writeJSON(w, code, errorBody{Error: err.Error()})
}

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
