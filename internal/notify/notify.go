// Package notify announces victories to external collaborators.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Victory is the payload sent when a session is won.
type Victory struct {
	SessionID string    `json:"session_id"`
	PlayerID  string    `json:"username"`
	Message   string    `json:"message"`
	Score     int       `json:"score"`
	Layout    string    `json:"layout"`
	At        time.Time `json:"at"`
}

// Announcer delivers a victory. Implementations may block; the engine always
// calls them off the tick loop.
type Announcer interface {
	Announce(ctx context.Context, v Victory) error
}

// WebhookAnnouncer POSTs the victory as JSON to URL.
type WebhookAnnouncer struct {
	URL    string
	Client *http.Client
}

// NewWebhookAnnouncer creates a webhook announcer with a request timeout.
func NewWebhookAnnouncer(url string, timeout time.Duration) *WebhookAnnouncer {
	return &WebhookAnnouncer{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

// Announce posts v and treats any non-2xx status as failure.
func (w *WebhookAnnouncer) Announce(ctx context.Context, v Victory) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("notify: encoding victory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: posting to %s: %w", w.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notify: %s responded %s", w.URL, resp.Status)
	}
	return nil
}

// LogAnnouncer writes the victory to a logger.
type LogAnnouncer struct {
	Logger *log.Logger
}

// Announce logs v at info level.
func (l LogAnnouncer) Announce(_ context.Context, v Victory) error {
	if l.Logger == nil {
		return nil
	}
	l.Logger.Info("victory", "session", v.SessionID, "player", v.PlayerID, "score", v.Score, "message", v.Message)
	return nil
}

// MultiAnnouncer calls every announcer and joins their errors.
type MultiAnnouncer []Announcer

// Announce delivers v to all announcers, even after a failure.
func (m MultiAnnouncer) Announce(ctx context.Context, v Victory) error {
	var errs []error
	for _, a := range m {
		if err := a.Announce(ctx, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
