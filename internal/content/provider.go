package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/imposterpurge/engine/internal/models"
)

// RequestType keys the content-generation calls the engine can make.
type RequestType string

const (
	RequestInitialPrompt   RequestType = "INITIAL_PROMPT"
	RequestScenarioContext RequestType = "SCENARIO_CONTEXT"
	RequestVirusNoise      RequestType = "VIRUS_NOISE"
)

// Request carries a content-generation call and its mode parameters.
type Request struct {
	Type        RequestType
	Mode        models.MainMode
	RealProject string
	Location    string
	RealWord    string
	VirusWord   string
}

// Response is the structured text the provider returns. Only the
// fields relevant to the request type are populated.
type Response struct {
	WordA           string   `json:"wordA,omitempty"`
	WordB           string   `json:"wordB,omitempty"`
	Project         string   `json:"project,omitempty"`
	Location        string   `json:"location,omitempty"`
	Catch           string   `json:"catch,omitempty"`
	ImposterProject string   `json:"imposterProject,omitempty"`
	Distractors     []string `json:"distractors,omitempty"`
	RealWord        string   `json:"realWord,omitempty"`
	VirusWord       string   `json:"virusWord,omitempty"`
	NoiseWords      []string `json:"noiseWords,omitempty"`
}

// Provider is the external content-generation collaborator. Failure,
// timeout and rate limiting are all equivalent to the caller: fall
// back to local content.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// ErrRateLimited marks a provider 429; callers treat it like any
// other provider failure.
var ErrRateLimited = errors.New("content provider rate limited")

// Gemini calls a Gemini-style generateContent endpoint and asks for a
// JSON payload matching Response.
type Gemini struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewGemini builds a provider client. An empty model selects the
// default; timeout bounds each call.
func NewGemini(baseURL, apiKey, model string, timeout time.Duration) *Gemini {
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Gemini{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func prompt(req Request) string {
	switch req.Type {
	case RequestScenarioContext:
		return fmt.Sprintf(
			"We are playing a secret role game. The real project is %q and the location is %q. "+
				"Create one similar project for the imposter and three plausible distractor projects. "+
				"Reply as JSON with fields imposterProject and distractors.",
			req.RealProject, req.Location)
	case RequestVirusNoise:
		return fmt.Sprintf(
			"Co-op game logic: humans describe %q, the hidden virus word is %q. "+
				"Generate 3 nouns strongly associated with the virus word but not used to describe the real word. "+
				"Reply as JSON with field noiseWords.",
			req.RealWord, req.VirusWord)
	default: // initial prompt, varies by mode
		switch req.Mode {
		case models.ModeTerms, models.ModePair:
			return "Generate a pair of words for a social deduction game, similar enough to confuse but distinct. " +
				"Reply as JSON with fields wordA and wordB."
		case models.ModeVirusPurge:
			return "Generate a theme for a co-op virus purge game: an everyday noun and a technical or malicious concept. " +
				"Reply as JSON with fields realWord and virusWord."
		default:
			return "Generate a unique urban development project for a social deduction game: a facility, where it is built, " +
				"and a strange rule for it. Reply as JSON with fields project, location and catch."
		}
	}
}

// Generate performs one content-generation call.
func (g *Gemini) Generate(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []generateContent{{Parts: []generatePart{{Text: prompt(req)}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider status %d", resp.StatusCode)
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("provider returned no candidates")
	}

	var out Response
	if err := json.Unmarshal([]byte(payload.Candidates[0].Content.Parts[0].Text), &out); err != nil {
		return nil, fmt.Errorf("decode generated content: %w", err)
	}
	return &out, nil
}
