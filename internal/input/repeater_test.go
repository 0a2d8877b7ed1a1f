package input

import (
	"testing"
	"time"

	"github.com/vovakirdan/pursuit/internal/core"
)

func receive(t *testing.T, r *Repeater, timeout time.Duration) (core.Direction, bool) {
	t.Helper()
	select {
	case d := <-r.C:
		return d, true
	case <-time.After(timeout):
		return core.DirNone, false
	}
}

func TestRepeaterEmits(t *testing.T) {
	r := NewRepeater(10 * time.Millisecond)
	defer r.Stop()

	r.Start(core.DirLeft)
	for i := 0; i < 3; i++ {
		d, ok := receive(t, r, time.Second)
		if !ok || d != core.DirLeft {
			t.Fatalf("receive %d = (%v, %v), expected left", i, d, ok)
		}
	}
	if r.Active() != core.DirLeft {
		t.Errorf("Active() = %v, expected left", r.Active())
	}
}

func TestRepeaterStartReplaces(t *testing.T) {
	r := NewRepeater(10 * time.Millisecond)
	defer r.Stop()

	r.Start(core.DirUp)
	r.Start(core.DirDown)

	// After the switch only the new direction may arrive.
	for i := 0; i < 5; i++ {
		d, ok := receive(t, r, time.Second)
		if !ok {
			t.Fatal("expected a command")
		}
		if d != core.DirDown {
			t.Fatalf("received %v after switching to down", d)
		}
	}
}

func TestRepeaterStopIdempotent(t *testing.T) {
	r := NewRepeater(10 * time.Millisecond)

	r.Stop() // Nothing active
	r.Start(core.DirRight)
	r.Stop()
	r.Stop()

	if r.Active() != core.DirNone {
		t.Errorf("Active() = %v, expected none", r.Active())
	}
	if d, ok := receive(t, r, 50*time.Millisecond); ok {
		t.Errorf("received %v after Stop", d)
	}
}

func TestRepeaterStartNoneStops(t *testing.T) {
	r := NewRepeater(10 * time.Millisecond)
	r.Start(core.DirRight)
	r.Start(core.DirNone)
	if r.Active() != core.DirNone {
		t.Errorf("Active() = %v, expected none", r.Active())
	}
}

func TestRepeaterDefaultPeriod(t *testing.T) {
	r := NewRepeater(0)
	if r.period != DefaultPeriod {
		t.Errorf("period = %v, expected %v", r.period, DefaultPeriod)
	}
}

func TestRepeaterClose(t *testing.T) {
	r := NewRepeater(10 * time.Millisecond)
	r.Start(core.DirDown)
	r.Close()
	r.Close()

	select {
	case _, ok := <-r.C:
		if ok {
			t.Error("C still open after Close")
		}
	case <-time.After(time.Second):
		t.Fatal("C not closed")
	}

	r.Start(core.DirUp)
	if r.Active() != core.DirNone {
		t.Errorf("Active() after Close = %v, expected none", r.Active())
	}
}
