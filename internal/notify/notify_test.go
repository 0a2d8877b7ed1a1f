package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWebhookAnnouncer(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, expected POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := NewWebhookAnnouncer(srv.URL, time.Second)
	v := Victory{SessionID: "s1", PlayerID: "alice", Message: "hi", Score: 5}
	if err := a.Announce(context.Background(), v); err != nil {
		t.Fatalf("Announce() = %v", err)
	}
	if got["username"] != "alice" || got["message"] != "hi" {
		t.Errorf("body = %v, expected username and message", got)
	}
}

func TestWebhookAnnouncerStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewWebhookAnnouncer(srv.URL, time.Second)
	if err := a.Announce(context.Background(), Victory{}); err == nil {
		t.Error("non-2xx response should fail")
	}
}

type fakeAnnouncer struct {
	calls int
	err   error
}

func (f *fakeAnnouncer) Announce(context.Context, Victory) error {
	f.calls++
	return f.err
}

func TestMultiAnnouncer(t *testing.T) {
	boom := errors.New("boom")
	a, b := &fakeAnnouncer{err: boom}, &fakeAnnouncer{}
	m := MultiAnnouncer{a, b, LogAnnouncer{}}

	err := m.Announce(context.Background(), Victory{})
	if !errors.Is(err, boom) {
		t.Errorf("Announce() = %v, expected boom", err)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("calls = %d, %d, expected 1, 1", a.calls, b.calls)
	}
}
