package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/imposterpurge/engine/internal/config"
	"github.com/imposterpurge/engine/internal/content"
	"github.com/imposterpurge/engine/internal/game"
	"github.com/imposterpurge/engine/internal/handlers"
	"github.com/imposterpurge/engine/internal/session"
	"github.com/imposterpurge/engine/internal/sse"
	"github.com/imposterpurge/engine/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	st, err := store.OpenSQLite(cfg.DataPath)
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}
	defer st.Close()

	lib := content.NewLibrary(st)

	var provider content.Provider
	if cfg.GeminiAPIKey != "" {
		provider = content.NewGemini(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
		log.Printf("Content provider: %s", cfg.GeminiModel)
	} else {
		log.Print("No API key set, content resolves from the local library")
	}

	rng := game.NewSource(cfg.RandSeed)
	resolver := game.NewResolver(st)
	builder := content.NewBuilder(lib, provider, rng)
	engine := session.NewEngine(builder, resolver, st, session.WithRand(rng))

	broker := sse.NewBroker()
	engine.SetListener(func(ev session.Event) {
		data, err := json.Marshal(ev)
		if err != nil {
			log.Printf("marshal event: %v", err)
			return
		}
		switch ev.Kind {
		case session.EventTick:
			broker.Broadcast(sse.EventTick, string(data))
		case session.EventNotice:
			broker.Broadcast(sse.EventNotice, string(data))
		default:
			broker.Broadcast(sse.EventState, string(data))
		}
	})

	ctx := &handlers.Context{
		Engine:   engine,
		Library:  lib,
		Resolver: resolver,
		Broker:   broker,
	}

	mux := http.NewServeMux()
	ctx.Routes(mux)

	log.Printf("Server starting on %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, mux))
}
