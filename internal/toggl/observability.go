package toggl

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/overtime/internal/domain"
)

// FetchEvent records metadata about a single time-entry fetch.
type FetchEvent struct {
	RequestID string
	Start     domain.Day
	End       domain.Day
	Entries   int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about Toggl API calls for logging.
type Observer interface {
	OnFetchComplete(event FetchEvent)
}

// LogObserver writes fetch events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnFetchComplete(event FetchEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] toggl_fetch request_id=%s start=%s end=%s entries=%d latency_ms=%d status=%s\n",
		ts, event.RequestID, event.Start, event.End, event.Entries, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetchComplete(FetchEvent) {}
