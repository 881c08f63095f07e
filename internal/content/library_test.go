package content

import (
	"errors"
	"testing"

	"github.com/imposterpurge/engine/internal/game"
	"github.com/imposterpurge/engine/internal/models"
	"github.com/imposterpurge/engine/internal/store"
)

func newTestLibrary() *Library {
	return NewLibrary(store.NewMemory())
}

func TestDefaultsAreLoaded(t *testing.T) {
	lib := newTestLibrary()

	words, active := lib.WordSets()
	if len(words) == 0 || len(active) == 0 {
		t.Fatalf("word sets = %d active = %d, want defaults", len(words), len(active))
	}
	if sets, _ := lib.ScenarioSets(); len(sets) == 0 {
		t.Fatal("no default scenario sets")
	}
	if sets, _ := lib.InquestSets(); len(sets) == 0 {
		t.Fatal("no default inquest sets")
	}
	if sets, _ := lib.VirusSets(); len(sets) == 0 {
		t.Fatal("no default virus sets")
	}
}

func TestSetActiveRejectsEmptySelection(t *testing.T) {
	lib := newTestLibrary()
	if err := lib.SetActive(models.KindWords, nil); !errors.Is(err, ErrNoActiveSets) {
		t.Fatalf("empty selection accepted, err = %v", err)
	}
	// The previous selection must still draw.
	if _, err := lib.DrawWordPair(game.NewSource(1)); err != nil {
		t.Fatalf("draw after rejected selection: %v", err)
	}
}

func TestDeleteLastSetRejected(t *testing.T) {
	lib := newTestLibrary()
	sets, _ := lib.ScenarioSets()
	if len(sets) != 1 {
		t.Fatalf("expected a single default scenario set, got %d", len(sets))
	}
	if err := lib.DeleteScenarioSet(sets[0].ID); !errors.Is(err, ErrLastSet) {
		t.Fatalf("deleting the last set accepted, err = %v", err)
	}
}

func TestUpsertAssignsID(t *testing.T) {
	lib := newTestLibrary()
	saved, err := lib.UpsertWordSet(models.WordSet{
		Name:  "Custom",
		Pairs: []models.WordPair{{WordA: "Cat", WordB: "Dog"}},
	})
	if err != nil {
		t.Fatalf("UpsertWordSet: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("upsert left a blank id")
	}
}

func TestUpsertPersistsAcrossReload(t *testing.T) {
	mem := store.NewMemory()
	lib := NewLibrary(mem)
	saved, err := lib.UpsertVirusSet(models.VirusSet{Name: "Lab", Words: []string{"Petri", "Agar"}})
	if err != nil {
		t.Fatalf("UpsertVirusSet: %v", err)
	}

	reloaded := NewLibrary(mem)
	sets, _ := reloaded.VirusSets()
	found := false
	for _, s := range sets {
		if s.ID == saved.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("custom virus set lost on reload: %v", sets)
	}
}

func TestDrawWordPairFromActiveSet(t *testing.T) {
	lib := newTestLibrary()
	if err := lib.SetActive(models.KindWords, []string{"words-animals"}); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	drawn, err := lib.DrawWordPair(game.NewSource(3))
	if err != nil {
		t.Fatalf("DrawWordPair: %v", err)
	}
	if drawn.SetName != "Animals & Nature" {
		t.Fatalf("drew from %q, want the only active set", drawn.SetName)
	}
	if drawn.Pair.WordA == "" || drawn.Pair.WordB == "" {
		t.Fatalf("empty pair drawn: %+v", drawn.Pair)
	}
}

func TestDrawScenarioIncludesOthers(t *testing.T) {
	lib := newTestLibrary()
	drawn, err := lib.DrawScenario(game.NewSource(4))
	if err != nil {
		t.Fatalf("DrawScenario: %v", err)
	}
	if drawn.Project == "" || drawn.Location == "" {
		t.Fatalf("incomplete scenario: %+v", drawn)
	}
	for _, other := range drawn.Others {
		if other == drawn.Project {
			t.Fatalf("drawn project %q listed among the others", drawn.Project)
		}
	}
}

func TestDrawInquest(t *testing.T) {
	lib := newTestLibrary()
	drawn, err := lib.DrawInquest(game.NewSource(5))
	if err != nil {
		t.Fatalf("DrawInquest: %v", err)
	}
	if len(drawn.Scenario.Questions) == 0 || len(drawn.Scenario.Options) == 0 {
		t.Fatalf("inquest scenario missing content: %+v", drawn.Scenario)
	}
}

func TestDrawVirusWord(t *testing.T) {
	lib := newTestLibrary()
	word, err := lib.DrawVirusWord(game.NewSource(6))
	if err != nil {
		t.Fatalf("DrawVirusWord: %v", err)
	}
	if word == "" {
		t.Fatal("empty virus word")
	}
}
