package content

import (
	"context"
	"fmt"
	"log"

	"github.com/imposterpurge/engine/internal/game"
	"github.com/imposterpurge/engine/internal/models"
)

// Notice is a non-fatal, user-visible message surfaced during context
// resolution (toast-style in the presentation layer).
type Notice struct {
	Level   string `json:"level"` // "info" or "warning"
	Message string `json:"message"`
}

const fallbackNotice = "Remote mission intel unavailable. Local fallback engaged."

// BuildConfig is the setup input the context builder needs.
type BuildConfig struct {
	MainMode        models.MainMode
	Category        models.GameCategory
	PlayerNames     []string
	IncludeHints    bool
	IncludeTaboo    bool
	UseAIMissions   bool
	IsAuctionActive bool
	IsBlindBidding  bool
}

// Builder resolves the shared mission content for a session. Provider
// failures never propagate: every path degrades to local library
// draws so the session can always start.
type Builder struct {
	lib      *Library
	provider Provider
	rng      game.Source
}

// NewBuilder wires a builder. The provider may be nil, which forces
// local resolution regardless of the AI flag.
func NewBuilder(lib *Library, provider Provider, rng game.Source) *Builder {
	return &Builder{lib: lib, provider: provider, rng: rng}
}

// Build resolves the GameContext for one session. The returned notices
// are non-blocking; a non-nil error is a configuration error that must
// block session start.
func (b *Builder) Build(ctx context.Context, cfg BuildConfig) (*models.GameContext, []Notice, error) {
	if cfg.Category == models.CategoryPvE || cfg.MainMode == models.ModeVirusPurge {
		return b.buildVirusPurge(ctx, cfg)
	}
	return b.buildVersus(ctx, cfg)
}

// generate consults the provider; any failure is reported to the
// caller as "use the fallback".
func (b *Builder) generate(ctx context.Context, req Request) (*Response, bool) {
	if b.provider == nil {
		return nil, false
	}
	resp, err := b.provider.Generate(ctx, req)
	if err != nil {
		log.Printf("content provider %s failed: %v", req.Type, err)
		return nil, false
	}
	if resp == nil {
		return nil, false
	}
	return resp, true
}

func (b *Builder) buildVirusPurge(ctx context.Context, cfg BuildConfig) (*models.GameContext, []Notice, error) {
	var notices []Notice

	virusWord := ""
	realWord := ""
	category := "Co-op Core"
	noise := append([]string(nil), localNoiseWords...)

	resolved := false
	if cfg.UseAIMissions {
		if resp, ok := b.generate(ctx, Request{Type: RequestInitialPrompt, Mode: models.ModeVirusPurge}); ok && resp.RealWord != "" && resp.VirusWord != "" {
			realWord = resp.RealWord
			virusWord = resp.VirusWord
			category = "AI Network Purge"
			resolved = true
			if noiseResp, ok := b.generate(ctx, Request{
				Type: RequestVirusNoise, RealWord: realWord, VirusWord: virusWord,
			}); ok && len(noiseResp.NoiseWords) > 0 {
				noise = noiseResp.NoiseWords
			} else {
				noise = append([]string(nil), fallbackNoiseWords...)
				notices = append(notices, Notice{Level: "warning", Message: fallbackNotice})
			}
		} else {
			notices = append(notices, Notice{Level: "warning", Message: fallbackNotice})
		}
	}
	if !resolved {
		var err error
		virusWord, err = b.lib.DrawVirusWord(b.rng)
		if err != nil {
			return nil, notices, fmt.Errorf("virus word: %w", err)
		}
		drawn, err := b.lib.DrawWordPair(b.rng)
		if err != nil {
			return nil, notices, fmt.Errorf("real word: %w", err)
		}
		realWord = drawn.Pair.WordA
		category = drawn.SetName
	}

	return &models.GameContext{
		MainMode:           models.ModeVirusPurge,
		Category:           category,
		RealProject:        realWord,
		ImposterProject:    "THREAT_DETECTED",
		Location:           "Secure Uplink",
		VirusWord:          virusWord,
		NoiseWords:         noise,
		IncludeHints:       true,
		StartingPlayerName: game.Pick(b.rng, cfg.PlayerNames),
	}, notices, nil
}

func (b *Builder) buildVersus(ctx context.Context, cfg BuildConfig) (*models.GameContext, []Notice, error) {
	var notices []Notice

	gc := &models.GameContext{
		MainMode:        cfg.MainMode,
		IncludeHints:    cfg.IncludeHints,
		IsAuctionActive: cfg.IsAuctionActive,
		IsBlindBidding:  cfg.IsBlindBidding,
	}

	switch cfg.MainMode {
	case models.ModeTerms, models.ModePair:
		if err := b.resolveWordPair(ctx, cfg, gc, &notices); err != nil {
			return nil, notices, err
		}
	case models.ModeInquest:
		if err := b.resolveInquest(gc); err != nil {
			return nil, notices, err
		}
	default: // Scheme, Investment
		if err := b.resolveScenario(ctx, cfg, gc, &notices); err != nil {
			return nil, notices, err
		}
		if cfg.MainMode == models.ModeInvestment {
			gc.InvestmentCategories = append([]string(nil), InvestmentCategories...)
		}
	}

	if cfg.MainMode == models.ModePair {
		gc.DualWordsChain = b.buildChain(gc.RealProject, gc.ImposterProject, len(cfg.PlayerNames))
		gc.RealProject = gc.DualWordsChain[0]
	}

	if cfg.IncludeTaboo {
		gc.TabooConstraint = game.Pick(b.rng, TabooConstraints)
	}
	if cfg.IsAuctionActive {
		gc.AvailablePowers = b.drawPowers()
	}
	if !cfg.IncludeHints {
		gc.ImposterProject = game.UnknownSecret
	}
	gc.StartingPlayerName = game.Pick(b.rng, cfg.PlayerNames)

	return gc, notices, nil
}

func (b *Builder) resolveWordPair(ctx context.Context, cfg BuildConfig, gc *models.GameContext, notices *[]Notice) error {
	if cfg.UseAIMissions {
		if resp, ok := b.generate(ctx, Request{Type: RequestInitialPrompt, Mode: cfg.MainMode}); ok && resp.WordA != "" && resp.WordB != "" {
			gc.RealProject = resp.WordA
			gc.ImposterProject = resp.WordB
			gc.Category = "Neural Retrieval"
			gc.Location = "Terms Office"
			gc.Distractors = append([]string(nil), fallbackDistractors...)
			return nil
		}
		*notices = append(*notices, Notice{Level: "warning", Message: fallbackNotice})
	}
	drawn, err := b.lib.DrawWordPair(b.rng)
	if err != nil {
		return fmt.Errorf("word pair: %w", err)
	}
	gc.RealProject = drawn.Pair.WordA
	gc.ImposterProject = drawn.Pair.WordB
	gc.Category = drawn.SetName
	gc.Location = "Terms Office"
	gc.Distractors = append([]string(nil), fallbackDistractors...)
	return nil
}

func (b *Builder) resolveScenario(ctx context.Context, cfg BuildConfig, gc *models.GameContext, notices *[]Notice) error {
	if cfg.UseAIMissions {
		if resp, ok := b.generate(ctx, Request{Type: RequestInitialPrompt, Mode: cfg.MainMode}); ok && resp.Project != "" {
			gc.RealProject = resp.Project
			gc.Location = resp.Location
			gc.CatchRule = resp.Catch
			gc.Category = "Strategic Ops"
			b.resolveScenarioContext(ctx, gc, nil, notices)
			return nil
		}
		*notices = append(*notices, Notice{Level: "warning", Message: fallbackNotice})
	}
	drawn, err := b.lib.DrawScenario(b.rng)
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	gc.RealProject = drawn.Project
	gc.Location = drawn.Location
	gc.CatchRule = drawn.Catch
	gc.Category = drawn.SetName
	b.resolveScenarioContext(ctx, gc, drawn.Others, notices)
	return nil
}

// resolveScenarioContext fills the imposter decoy and the distractor
// list, through the provider when AI is on and resolvable, otherwise
// deterministically from local material.
func (b *Builder) resolveScenarioContext(ctx context.Context, gc *models.GameContext, others []string, notices *[]Notice) {
	if b.provider != nil {
		if resp, ok := b.generate(ctx, Request{
			Type:        RequestScenarioContext,
			RealProject: gc.RealProject,
			Location:    gc.Location,
		}); ok && resp.ImposterProject != "" && len(resp.Distractors) > 0 {
			gc.ImposterProject = resp.ImposterProject
			gc.Distractors = resp.Distractors
			return
		}
		*notices = append(*notices, Notice{Level: "warning", Message: fallbackNotice})
	}
	gc.ImposterProject = "Alternative " + gc.RealProject
	gc.Distractors = append([]string(nil), fallbackDistractors...)
	if len(others) >= 3 {
		b.rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
		gc.Distractors = append([]string(nil), others[:3]...)
	}
}

func (b *Builder) resolveInquest(gc *models.GameContext) error {
	drawn, err := b.lib.DrawInquest(b.rng)
	if err != nil {
		return fmt.Errorf("inquest: %w", err)
	}
	sc := drawn.Scenario
	gc.RealProject = sc.RealProject
	gc.ImposterProject = sc.FakeProject
	gc.Location = sc.Location
	gc.Category = drawn.SetName
	gc.InquestQuestions = append([]string(nil), sc.Questions...)
	gc.InquestOptions = append([]string(nil), sc.Options...)
	gc.Distractors = append([]string(nil), fallbackDistractors...)
	return nil
}

// buildChain lays out the circular word chain for Pair mode: the drawn
// pair first, then filler words from the active sets, cycled to the
// player count.
func (b *Builder) buildChain(wordA, wordB string, playerCount int) []string {
	pool := []string{wordA, wordB}
	seen := map[string]bool{wordA: true, wordB: true}
	extras := b.lib.ActiveWords()
	b.rng.Shuffle(len(extras), func(i, j int) { extras[i], extras[j] = extras[j], extras[i] })
	for _, w := range extras {
		if !seen[w] {
			pool = append(pool, w)
			seen[w] = true
		}
	}
	chain := make([]string, playerCount)
	for i := range chain {
		chain[i] = pool[i%len(pool)]
	}
	return chain
}

func (b *Builder) drawPowers() []models.PowerUp {
	powers := models.AllPowerUps()
	b.rng.Shuffle(len(powers), func(i, j int) { powers[i], powers[j] = powers[j], powers[i] })
	return powers[:game.AuctionPowerChoices]
}
