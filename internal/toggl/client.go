// Package toggl fetches raw time entries from the Toggl Track API. It is
// the acquisition side of the pipeline: everything downstream only ever
// sees already-parsed entries with a day and a non-negative duration.
package toggl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/overtime/internal/domain"
	"github.com/google/uuid"
)

// Client talks to the Toggl Track v9 API.
type Client struct {
	cfg       Config
	http      *http.Client
	observer  Observer
	requestID string
}

// NewClient creates a Client. Each client carries a request ID that is
// attached to every call and log event for the lifetime of the run.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer:  observer,
		requestID: uuid.NewString(),
	}
}

// apiEntry is one element of the JSON array returned by GET /me/time_entries.
type apiEntry struct {
	ID       int64  `json:"id"`
	Start    string `json:"start"`
	Duration int64  `json:"duration"`
}

// FetchEntries retrieves all time entries between start and end (inclusive)
// and resolves each to its calendar day. Running entries, which Toggl
// reports with a negative duration, are dropped here: the rest of the
// pipeline is promised non-negative durations.
func (c *Client) FetchEntries(ctx context.Context, start, end domain.Day) ([]domain.TimeEntry, error) {
	if c.cfg.Token == "" {
		return nil, ErrMissingToken
	}

	began := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var raw []apiEntry
	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		raw, lastErr = c.doRequest(ctx, start, end)
		if lastErr == nil {
			break
		}
		// A rejected token will not improve on retry.
		if errors.Is(lastErr, ErrUnauthorized) {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	if lastErr != nil {
		failure := c.classify(ctx, lastErr)
		c.observe(start, end, 0, began, failure)
		return nil, failure
	}

	entries := make([]domain.TimeEntry, 0, len(raw))
	for _, e := range raw {
		if e.Duration < 0 {
			continue
		}
		startedAt, err := time.Parse(time.RFC3339, e.Start)
		if err != nil {
			parseErr := fmt.Errorf("parsing start of entry %d: %w", e.ID, err)
			c.observe(start, end, 0, began, parseErr)
			return nil, parseErr
		}
		entries = append(entries, domain.TimeEntry{
			Day:      domain.DayOf(startedAt),
			Duration: e.Duration,
		})
	}

	c.observe(start, end, len(entries), began, nil)
	return entries, nil
}

func (c *Client) doRequest(ctx context.Context, start, end domain.Day) ([]apiEntry, error) {
	url := fmt.Sprintf("%s/me/time_entries?start_date=%s&end_date=%s", c.cfg.Endpoint, start, end)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Token, "api_token")
	req.Header.Set("X-Request-Id", c.requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("toggl returned status %d: %s", resp.StatusCode, string(body))
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return entries, nil
}

func (c *Client) classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return ErrUnauthorized
	case ctx.Err() != nil:
		return ErrTimeout
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func (c *Client) observe(start, end domain.Day, entries int, began time.Time, err error) {
	c.observer.OnFetchComplete(FetchEvent{
		RequestID: c.requestID,
		Start:     start,
		End:       end,
		Entries:   entries,
		LatencyMs: time.Since(began).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
