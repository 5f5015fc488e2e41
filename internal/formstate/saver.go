package formstate

import (
	"context"
	"sync"
	"time"

	"leasehub-backend/internal/logger"
)

// DefaultQuietWindow is the auto-save quiescence window: rapid edits within
// it coalesce into a single save.
const DefaultQuietWindow = 1500 * time.Millisecond

type SaveFunc func(ctx context.Context) error

// Saver coalesces bursts of edits into debounced saves. It is a single-slot
// producer/consumer: while a save is in flight exactly one follow-up save is
// queued, re-triggered when the in-flight one completes. Queued work is
// never dropped and saves never overlap. A failed save is logged and left
// for the caller to retry; it does not consume the queued slot.
type Saver struct {
	mu       sync.Mutex
	save     SaveFunc
	quiet    time.Duration
	timer    *time.Timer
	inFlight bool
	pending  bool
	stopped  bool
}

func NewSaver(save SaveFunc, quiet time.Duration) *Saver {
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	return &Saver{save: save, quiet: quiet}
}

// Notify records an edit. The pending save fires once no further edit
// arrives within the quiescence window.
func (s *Saver) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if s.timer == nil {
		s.timer = time.AfterFunc(s.quiet, s.fire)
		return
	}
	s.timer.Reset(s.quiet)
}

// Flush triggers the save immediately, skipping the quiescence window. The
// single-flight rules still apply.
func (s *Saver) Flush() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.fire()
}

// Stop cancels any scheduled save. An in-flight save is allowed to finish.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Saver) fire() {
	s.mu.Lock()
	s.timer = nil
	if s.inFlight {
		// Exactly one pending slot, not a growing queue.
		s.pending = true
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.mu.Unlock()
	go s.run()
}

func (s *Saver) run() {
	for {
		if err := s.save(context.Background()); err != nil {
			logger.Error("auto-save failed", "error", err)
		}
		s.mu.Lock()
		if s.pending && !s.stopped {
			s.pending = false
			s.mu.Unlock()
			continue
		}
		s.inFlight = false
		s.mu.Unlock()
		return
	}
}
