package bridge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

func (s *Server) handleSSEEvents(w http.ResponseWriter, r *http.Request) {
	if s.bus == nil {
		s.writeError(w, http.StatusServiceUnavailable, "event stream not available")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	flusher, canFlush := w.(http.Flusher)
	if !canFlush {
		s.logger.Warn("ResponseWriter does not support flushing, SSE may not work properly")
	}

	fmt.Fprintf(w, ": connected\nretry: 5000\n\n")
	if canFlush {
		flusher.Flush()
	}

	events := s.bus.Subscribe()
	defer s.bus.Unsubscribe(events)

	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			if err := writeSSEEvent(w, flusher, "ping", map[string]int64{"timestamp": time.Now().Unix()}); err != nil {
				s.logger.Debug("Failed to write SSE heartbeat", zap.Error(err))
				return
			}
		case evt, ok := <-events:
			if !ok {
				return
			}
			payload := map[string]interface{}{
				"id":        evt.Payload,
				"timestamp": evt.Timestamp.Unix(),
			}
			if err := writeSSEEvent(w, flusher, evt.Name, payload); err != nil {
				s.logger.Debug("Failed to write SSE event", zap.Error(err))
				return
			}
		}
	}
}

// writeSSEEvent writes one event. Event ids are ULIDs, so they sort in emission order.
// flusher may be nil.
func writeSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", ulid.Make().String(), event, jsonData); err != nil {
		return err
	}
	if flusher != nil {
		flusher.Flush()
	}
	return nil
}
