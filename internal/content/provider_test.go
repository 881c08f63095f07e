package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/imposterpurge/engine/internal/models"
)

func geminiBody(inner string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, inner)
}

func TestGeminiGenerateParsesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query: %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, geminiBody(`{"wordA":"Lighthouse","wordB":"Windmill"}`))
	}))
	defer srv.Close()

	g := NewGemini(srv.URL, "test-key", "", time.Second)
	resp, err := g.Generate(context.Background(), Request{Type: RequestInitialPrompt, Mode: models.ModeTerms})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.WordA != "Lighthouse" || resp.WordB != "Windmill" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestGeminiGenerateRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGemini(srv.URL, "test-key", "", time.Second)
	_, err := g.Generate(context.Background(), Request{Type: RequestInitialPrompt})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want rate limited", err)
	}
}

func TestGeminiGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGemini(srv.URL, "test-key", "", time.Second)
	if _, err := g.Generate(context.Background(), Request{Type: RequestVirusNoise}); err == nil {
		t.Fatal("server error not surfaced")
	}
}

func TestGeminiGenerateMalformedContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiBody(`not json`))
	}))
	defer srv.Close()

	g := NewGemini(srv.URL, "test-key", "", time.Second)
	if _, err := g.Generate(context.Background(), Request{Type: RequestScenarioContext}); err == nil {
		t.Fatal("malformed content accepted")
	}
}
