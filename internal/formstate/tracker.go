package formstate

import (
	"encoding/json"
	"sync"
)

// canonicalize renders any value into a canonical JSON string: maps are
// key-sorted by encoding/json, and round-tripping through interface{}
// erases type-level differences between equal shapes (a struct and the map
// it unmarshals to compare equal). Arrays keep their index order, which is
// the index-keyed-object comparison in list form.
func canonicalize(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", err
	}
	out, err := json.Marshal(generic)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DeepEqual compares two values by canonical serialization: primitive
// equality, identical key sets with recursively equal values for objects.
func DeepEqual(a, b any) bool {
	ca, errA := canonicalize(a)
	cb, errB := canonicalize(b)
	if errA != nil || errB != nil {
		return false
	}
	return ca == cb
}

// Tracker holds the last-saved baseline of a whole profile form and answers
// "are there unsaved changes". The baseline is a deep clone by construction:
// it is stored as a canonical serialization, so later mutation of the
// captured value cannot alias into it.
type Tracker struct {
	mu       sync.Mutex
	baseline string
	captured bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Capture replaces the baseline with the current state. Called at hydration
// and again immediately after every successful save.
func (t *Tracker) Capture(state any) error {
	c, err := canonicalize(state)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.baseline = c
	t.captured = true
	t.mu.Unlock()
	return nil
}

// HasChanges reports whether current differs from the baseline. Before any
// baseline exists it always reports false, so a form never flashes "unsaved
// changes" while its data is still loading.
func (t *Tracker) HasChanges(current any) bool {
	t.mu.Lock()
	baseline, captured := t.baseline, t.captured
	t.mu.Unlock()
	if !captured {
		return false
	}
	c, err := canonicalize(current)
	if err != nil {
		return true
	}
	return c != baseline
}

// Reset drops the baseline, returning the tracker to its pre-hydration
// state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.baseline = ""
	t.captured = false
	t.mu.Unlock()
}
