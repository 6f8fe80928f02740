package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/talent-scout/internal/pipeline"
)

// Event names used on the hunt stream. Clients subscribe to "step" for
// pipeline progress, then receive one "result" with the full report and a
// final "complete". Failures arrive as a single "error" event.
const (
	eventStep     = "step"
	eventResult   = "result"
	eventError    = "error"
	eventComplete = "complete"
)

// SSEWriter writes Server-Sent Events for a screening run
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// writeEvent sends one SSE event with a JSON payload
func (s *SSEWriter) writeEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteStep sends a pipeline progress event
func (s *SSEWriter) WriteStep(event pipeline.ProgressEvent) error {
	return s.writeEvent(eventStep, event)
}

// WriteResult sends the final screening report
func (s *SSEWriter) WriteResult(report *pipeline.HuntReport) error {
	return s.writeEvent(eventResult, report)
}

// WriteError sends an error event
func (s *SSEWriter) WriteError(message string) {
	s.writeEvent(eventError, map[string]string{"error": message}) //nolint:errcheck
}

// WriteComplete sends a completion event
func (s *SSEWriter) WriteComplete(runID, status string) {
	s.writeEvent(eventComplete, map[string]string{ //nolint:errcheck
		"run_id": runID,
		"status": status,
	})
}
