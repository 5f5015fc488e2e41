package formstate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSaver_CoalescesRapidEdits(t *testing.T) {
	var calls int32
	s := NewSaver(func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}, 30*time.Millisecond)
	defer s.Stop()

	for i := 0; i < 10; i++ {
		s.Notify()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "burst of edits must coalesce into one save")
}

func TestSaver_SingleQueuedSlotWhileInFlight(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	s := NewSaver(func(ctx context.Context) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			<-release
		}
		return nil
	}, 10*time.Millisecond)
	defer s.Stop()

	s.Flush() // first save, blocked inside SaveFunc

	time.Sleep(20 * time.Millisecond)
	// Many triggers while in flight collapse into one pending save.
	s.Flush()
	s.Flush()
	s.Flush()

	release <- struct{}{}
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "exactly one queued save, never a growing queue")
}

func TestSaver_PendingSaveIsNeverDropped(t *testing.T) {
	var calls int32
	block := make(chan struct{})
	s := NewSaver(func(ctx context.Context) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			<-block
		}
		return nil
	}, 10*time.Millisecond)
	defer s.Stop()

	s.Flush()
	time.Sleep(20 * time.Millisecond)
	s.Notify() // queued behind the in-flight save

	close(block)
	time.Sleep(60 * time.Millisecond)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(2), "edit made during a save must still be persisted")
}

func TestSaver_ErrorIsNotFatal(t *testing.T) {
	var calls int32
	s := NewSaver(func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("network timeout")
	}, 10*time.Millisecond)
	defer s.Stop()

	s.Flush()
	time.Sleep(30 * time.Millisecond)
	s.Flush()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "a failed save leaves the saver usable")
}

func TestSaver_StopCancelsScheduledSave(t *testing.T) {
	var calls int32
	s := NewSaver(func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}, 20*time.Millisecond)

	s.Notify()
	s.Stop()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
