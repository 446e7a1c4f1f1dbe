package adapthttp

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fitfuel/internal/app"
)

// writeStream relays snapshots as Server-Sent Events until the stream ends.
// Values go out as "data:" events, failed queries as "error" events.
func writeStream[T any](w http.ResponseWriter, r *http.Request, snapshots <-chan app.Snapshot[T]) {
	rc := http.NewResponseController(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		return
	}

	for snap := range snapshots {
		event, payload := "", any(snap.Value)
		if snap.Err != nil {
			event, payload = "error", map[string]any{"error": snap.Err.Error()}
		}
		b, err := json.Marshal(payload)
		if err != nil {
			return
		}
		if event != "" {
			if _, err := fmt.Fprintf(w, "event: %s\n", event); err != nil {
				return
			}
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", b); err != nil {
			return
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
