package content

import (
	"context"
	"strings"
	"testing"

	"github.com/imposterpurge/engine/internal/game"
	"github.com/imposterpurge/engine/internal/models"
	"github.com/imposterpurge/engine/internal/store"
)

// fakeProvider scripts one response per request type.
type fakeProvider struct {
	responses map[RequestType]*Response
	err       error
	calls     []RequestType
}

func (f *fakeProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	f.calls = append(f.calls, req.Type)
	if f.err != nil {
		return nil, f.err
	}
	return f.responses[req.Type], nil
}

func newTestBuilder(p Provider) *Builder {
	return NewBuilder(NewLibrary(store.NewMemory()), p, game.NewSource(1))
}

var fourNames = []string{"Ana", "Ben", "Cleo", "Dev"}

func TestBuildTermsLocal(t *testing.T) {
	b := newTestBuilder(nil)
	gc, notices, err := b.Build(context.Background(), BuildConfig{
		MainMode:     models.ModeTerms,
		Category:     models.CategoryPvP,
		PlayerNames:  fourNames,
		IncludeHints: true,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(notices) != 0 {
		t.Fatalf("local build raised notices: %v", notices)
	}
	if gc.RealProject == "" || gc.ImposterProject == "" {
		t.Fatalf("incomplete word pair: %+v", gc)
	}
	if gc.RealProject == gc.ImposterProject {
		t.Fatal("real and decoy words are identical")
	}
	found := false
	for _, n := range fourNames {
		if gc.StartingPlayerName == n {
			found = true
		}
	}
	if !found {
		t.Fatalf("starting player %q not in roster", gc.StartingPlayerName)
	}
}

func TestBuildHiddenHintsMaskDecoy(t *testing.T) {
	b := newTestBuilder(nil)
	gc, _, err := b.Build(context.Background(), BuildConfig{
		MainMode:    models.ModeTerms,
		Category:    models.CategoryPvP,
		PlayerNames: fourNames,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if gc.ImposterProject != game.UnknownSecret {
		t.Fatalf("decoy = %q, want masked without hints", gc.ImposterProject)
	}
}

func TestBuildSchemeProviderFailureFallsBack(t *testing.T) {
	p := &fakeProvider{err: ErrRateLimited}
	b := newTestBuilder(p)
	gc, notices, err := b.Build(context.Background(), BuildConfig{
		MainMode:      models.ModeScheme,
		Category:      models.CategoryPvP,
		PlayerNames:   fourNames,
		IncludeHints:  true,
		UseAIMissions: true,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(notices) == 0 {
		t.Fatal("provider failure raised no notice")
	}
	if gc.RealProject == "" {
		t.Fatal("fallback produced no scenario")
	}
	// The deterministic decoy when no context could be resolved.
	if !strings.HasPrefix(gc.ImposterProject, "Alternative ") {
		t.Fatalf("fallback decoy = %q, want the Alternative prefix", gc.ImposterProject)
	}
	if len(gc.Distractors) == 0 {
		t.Fatal("no distractors after fallback")
	}
}

func TestBuildSchemeProviderContext(t *testing.T) {
	p := &fakeProvider{responses: map[RequestType]*Response{
		RequestInitialPrompt: {Project: "Orbital Farm", Location: "Docklands", Catch: "No numbers"},
		RequestScenarioContext: {
			ImposterProject: "Orbital Prison",
			Distractors:     []string{"Sky Bridge", "Tide Wall", "Glass Garden"},
		},
	}}
	b := newTestBuilder(p)
	gc, notices, err := b.Build(context.Background(), BuildConfig{
		MainMode:      models.ModeScheme,
		Category:      models.CategoryPvP,
		PlayerNames:   fourNames,
		IncludeHints:  true,
		UseAIMissions: true,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(notices) != 0 {
		t.Fatalf("unexpected notices: %v", notices)
	}
	if gc.RealProject != "Orbital Farm" || gc.ImposterProject != "Orbital Prison" {
		t.Fatalf("provider content not used: %+v", gc)
	}
	if len(gc.Distractors) != 3 {
		t.Fatalf("distractors = %v, want the provider's three", gc.Distractors)
	}
}

func TestBuildPairChainWrapsPlayerCount(t *testing.T) {
	b := newTestBuilder(nil)
	names := []string{"Ana", "Ben", "Cleo", "Dev", "Eve", "Fox"}
	gc, _, err := b.Build(context.Background(), BuildConfig{
		MainMode:     models.ModePair,
		Category:     models.CategoryPvP,
		PlayerNames:  names,
		IncludeHints: true,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(gc.DualWordsChain) != len(names) {
		t.Fatalf("chain length = %d, want %d", len(gc.DualWordsChain), len(names))
	}
	for i, w := range gc.DualWordsChain {
		if w == "" {
			t.Fatalf("empty chain slot %d", i)
		}
	}
	if gc.RealProject != gc.DualWordsChain[0] {
		t.Fatalf("real project %q != chain head %q", gc.RealProject, gc.DualWordsChain[0])
	}
}

func TestBuildInquest(t *testing.T) {
	b := newTestBuilder(nil)
	gc, _, err := b.Build(context.Background(), BuildConfig{
		MainMode:     models.ModeInquest,
		Category:     models.CategoryPvP,
		PlayerNames:  fourNames,
		IncludeHints: true,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(gc.InquestQuestions) == 0 || len(gc.InquestOptions) == 0 {
		t.Fatalf("inquest content missing: %+v", gc)
	}
	if gc.ImposterProject == "" || gc.ImposterProject == gc.RealProject {
		t.Fatalf("fake project = %q against real %q", gc.ImposterProject, gc.RealProject)
	}
}

func TestBuildInvestmentCarriesCategories(t *testing.T) {
	b := newTestBuilder(nil)
	gc, _, err := b.Build(context.Background(), BuildConfig{
		MainMode:     models.ModeInvestment,
		Category:     models.CategoryPvP,
		PlayerNames:  fourNames,
		IncludeHints: true,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(gc.InvestmentCategories) != len(InvestmentCategories) {
		t.Fatalf("categories = %v", gc.InvestmentCategories)
	}
}

func TestBuildAuctionDrawsThreePowers(t *testing.T) {
	b := newTestBuilder(nil)
	gc, _, err := b.Build(context.Background(), BuildConfig{
		MainMode:        models.ModeTerms,
		Category:        models.CategoryPvP,
		PlayerNames:     fourNames,
		IncludeHints:    true,
		IsAuctionActive: true,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(gc.AvailablePowers) != game.AuctionPowerChoices {
		t.Fatalf("powers = %v, want %d choices", gc.AvailablePowers, game.AuctionPowerChoices)
	}
}

func TestBuildVirusPurgeLocal(t *testing.T) {
	b := newTestBuilder(nil)
	gc, notices, err := b.Build(context.Background(), BuildConfig{
		MainMode:    models.ModeVirusPurge,
		Category:    models.CategoryPvE,
		PlayerNames: fourNames,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(notices) != 0 {
		t.Fatalf("local build raised notices: %v", notices)
	}
	if gc.VirusWord == "" || gc.RealProject == "" {
		t.Fatalf("incomplete purge context: %+v", gc)
	}
	if len(gc.NoiseWords) == 0 {
		t.Fatal("no noise words")
	}
}

func TestBuildVirusPurgeAIWithNoiseFallback(t *testing.T) {
	p := &fakeProvider{responses: map[RequestType]*Response{
		RequestInitialPrompt: {RealWord: "Firewall", VirusWord: "Trojan"},
	}}
	b := newTestBuilder(p)
	gc, notices, err := b.Build(context.Background(), BuildConfig{
		MainMode:      models.ModeVirusPurge,
		Category:      models.CategoryPvE,
		PlayerNames:   fourNames,
		UseAIMissions: true,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if gc.RealProject != "Firewall" || gc.VirusWord != "Trojan" {
		t.Fatalf("provider words not used: %+v", gc)
	}
	if len(notices) == 0 {
		t.Fatal("missing noise fallback notice")
	}
	if len(gc.NoiseWords) == 0 {
		t.Fatal("no fallback noise words")
	}
}
