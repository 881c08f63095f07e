package handlers

import (
	"fmt"
	"net/http"

	"github.com/imposterpurge/engine/internal/models"
	"github.com/imposterpurge/engine/internal/session"
)

func parseKind(s string) (models.SetKind, error) {
	switch models.SetKind(s) {
	case models.KindWords, models.KindScenario, models.KindInquest, models.KindVirus:
		return models.SetKind(s), nil
	}
	return "", fmt.Errorf("%w: unknown set kind %q", session.ErrConfig, s)
}

type setList struct {
	Sets      any      `json:"sets"`
	ActiveIDs []string `json:"activeIds"`
}

// HandleListSets returns every set of a kind plus the active ids.
func (ctx *Context) HandleListSets(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, err)
		return
	}
	var out setList
	switch kind {
	case models.KindWords:
		out.Sets, out.ActiveIDs = ctx.Library.WordSets()
	case models.KindScenario:
		out.Sets, out.ActiveIDs = ctx.Library.ScenarioSets()
	case models.KindInquest:
		out.Sets, out.ActiveIDs = ctx.Library.InquestSets()
	case models.KindVirus:
		out.Sets, out.ActiveIDs = ctx.Library.VirusSets()
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleUpsertSet creates or replaces one content set. A blank id
// creates a new set.
func (ctx *Context) HandleUpsertSet(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, err)
		return
	}
	var saved any
	switch kind {
	case models.KindWords:
		var set models.WordSet
		if err = decode(r, &set); err == nil {
			saved, err = ctx.Library.UpsertWordSet(set)
		}
	case models.KindScenario:
		var set models.ScenarioSet
		if err = decode(r, &set); err == nil {
			saved, err = ctx.Library.UpsertScenarioSet(set)
		}
	case models.KindInquest:
		var set models.InquestSet
		if err = decode(r, &set); err == nil {
			saved, err = ctx.Library.UpsertInquestSet(set)
		}
	case models.KindVirus:
		var set models.VirusSet
		if err = decode(r, &set); err == nil {
			saved, err = ctx.Library.UpsertVirusSet(set)
		}
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// HandleDeleteSet removes one set. Deleting the last set of a kind is
// rejected; the library must always be able to draw.
func (ctx *Context) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, err)
		return
	}
	id := r.PathValue("id")
	switch kind {
	case models.KindWords:
		err = ctx.Library.DeleteWordSet(id)
	case models.KindScenario:
		err = ctx.Library.DeleteScenarioSet(id)
	case models.KindInquest:
		err = ctx.Library.DeleteInquestSet(id)
	case models.KindVirus:
		err = ctx.Library.DeleteVirusSet(id)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetActive replaces the active id list for a kind.
func (ctx *Context) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, err)
		return
	}
	var body struct {
		ActiveIDs []string `json:"activeIds"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, fmt.Errorf("%w: %v", session.ErrConfig, err))
		return
	}
	if err := ctx.Library.SetActive(kind, body.ActiveIDs); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
