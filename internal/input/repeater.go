// Package input turns held controls into discrete direction commands.
package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/pursuit/internal/core"
)

// DefaultPeriod is the repeat interval for held directions.
const DefaultPeriod = 100 * time.Millisecond

// Repeater emits the held direction on C once per period. Only one
// direction repeats at a time: Start cancels any previous repeat. Commands
// are dropped rather than queued when the consumer falls behind.
type Repeater struct {
	C <-chan core.Direction

	period time.Duration
	out    chan core.Direction

	mu      sync.Mutex
	current core.Direction
	stop    chan struct{}
	done    chan struct{}
	closed  bool
}

// NewRepeater creates an idle repeater. A non-positive period uses DefaultPeriod.
func NewRepeater(period time.Duration) *Repeater {
	if period <= 0 {
		period = DefaultPeriod
	}
	out := make(chan core.Direction, 1)
	return &Repeater{C: out, out: out, period: period}
}

// Start begins repeating dir, replacing any active repeat. The first command
// is sent immediately.
func (r *Repeater) Start(dir core.Direction) {
	if dir == core.DirNone {
		r.Stop()
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || (r.stop != nil && r.current == dir) {
		return
	}
	r.stopLocked()

	stop := make(chan struct{})
	done := make(chan struct{})
	r.current, r.stop, r.done = dir, stop, done
	go r.run(dir, stop, done)
}

// Stop cancels the active repeat. Calling it with nothing active is a no-op.
// No command for the cancelled direction is sent after Stop returns.
func (r *Repeater) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

// Close stops any repeat and closes C. Start is a no-op afterwards.
func (r *Repeater) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.stopLocked()
	r.closed = true
	close(r.out)
}

// Active returns the repeating direction, or DirNone.
func (r *Repeater) Active() core.Direction {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop == nil {
		return core.DirNone
	}
	return r.current
}

func (r *Repeater) stopLocked() {
	if r.stop == nil {
		return
	}
	close(r.stop)
	<-r.done
	r.stop, r.done = nil, nil
	r.current = core.DirNone

	// Drop a command still sitting in the buffer.
	select {
	case <-r.out:
	default:
	}
}

func (r *Repeater) run(dir core.Direction, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	r.send(dir, stop)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.send(dir, stop)
		}
	}
}

func (r *Repeater) send(dir core.Direction, stop <-chan struct{}) {
	select {
	case <-stop:
	case r.out <- dir:
	default:
	}
}
