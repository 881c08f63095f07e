package handlers

import (
	"fmt"
	"log"
	"net/http"
)

// HandleSSE streams engine events to one browser until it disconnects.
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := ctx.Broker.Subscribe()
	defer ctx.Broker.Unsubscribe(ch)

	if debug {
		log.Printf("sse: client connected, now have %d", ctx.Broker.ClientCount())
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-ch:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}
